// Package icon 读取窗口图标
package icon

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/png" // 必加，否则 image: unknown format

	"github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// 资源目录里按顺序查找的文件
var candidates = []string{"clock.ico", "clock.png"}

// StandardSizes 任务栏/标题栏常用的图标尺寸
var StandardSizes = []int{16, 32, 48}

// ErrNotFound 资源目录里没有图标
var ErrNotFound = errors.New("icon not found")

// Load 读取资源目录里的图标，返回可以直接交给 ebiten.SetWindowIcon 的图片列表
func Load(dir string) ([]image.Image, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		imgs, err := decodeFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return WithSizes(imgs, StandardSizes...), nil
	}
	return nil, ErrNotFound
}

func decodeFile(path string) ([]image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// ico 里通常打包了多种尺寸，全部取出来
	if filepath.Ext(path) == ".ico" {
		return ico.DecodeAll(file)
	}
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return []image.Image{img}, nil
}

// WithSizes 图标里缺少的尺寸从最大的那张缩放出来
func WithSizes(imgs []image.Image, sizes ...int) []image.Image {
	if len(imgs) == 0 {
		return imgs
	}

	have := make(map[int]bool)
	largest := imgs[0]
	for _, img := range imgs {
		b := img.Bounds()
		if b.Dx() == b.Dy() {
			have[b.Dx()] = true
		}
		if b.Dx()*b.Dy() > largest.Bounds().Dx()*largest.Bounds().Dy() {
			largest = img
		}
	}

	out := append([]image.Image(nil), imgs...)
	for _, size := range sizes {
		if have[size] || size <= 0 {
			continue
		}
		out = append(out, Resample(largest, size))
	}
	return out
}

// Resample 缩放成 size x size
func Resample(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
