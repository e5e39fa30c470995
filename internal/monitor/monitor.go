// Package monitor 枚举已连接的显示器，并据此校验/计算挂件的初始位置
package monitor

import (
	"errors"
	"image"
	"log/slog"
)

// Display 一块显示器的几何信息，全局坐标 (X 根窗口坐标系)
type Display struct {
	Name    string
	Bounds  image.Rectangle
	Primary bool
}

// Provider 从窗口系统获取显示器列表
type Provider interface {
	Displays() ([]Display, error)
}

// ProviderFunc 函数适配器
type ProviderFunc func() ([]Display, error)

func (f ProviderFunc) Displays() ([]Display, error) { return f() }

// ErrNoDisplays 窗口系统没有返回任何可用显示器
var ErrNoDisplays = errors.New("no displays found")

// fallbackDisplay 所有来源都失败时假定的主屏
var fallbackDisplay = Display{Name: "fallback", Bounds: image.Rect(0, 0, 1920, 1080), Primary: true}

// Chain 依次尝试各个 Provider，第一个返回非空列表的为准
func Chain(providers ...Provider) Provider {
	return ProviderFunc(func() ([]Display, error) {
		var errs []error
		for _, p := range providers {
			if p == nil {
				continue
			}
			ds, err := p.Displays()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if len(ds) > 0 {
				return ds, nil
			}
		}
		errs = append(errs, ErrNoDisplays)
		return nil, errors.Join(errs...)
	})
}

// Query 获取显示器列表，失败时退回一块 1920x1080 的假定主屏
func Query(p Provider, logger *slog.Logger) []Display {
	ds, err := p.Displays()
	if err != nil || len(ds) == 0 {
		logger.Warn("display enumeration failed, assuming default primary display", "error", err)
		return []Display{fallbackDisplay}
	}
	for _, d := range ds {
		logger.Debug("display", "name", d.Name, "bounds", d.Bounds, "primary", d.Primary)
	}
	return ds
}

// Primary 主屏；没有标记主屏时取第一块
func Primary(displays []Display) Display {
	for _, d := range displays {
		if d.Primary {
			return d
		}
	}
	if len(displays) > 0 {
		return displays[0]
	}
	return fallbackDisplay
}

// Visible 以 origin 为左上角、边长 size 的挂件，其中心是否落在某块显示器上
func Visible(displays []Display, origin image.Point, size int) bool {
	center := origin.Add(image.Pt(size/2, size/2))
	for _, d := range displays {
		if center.In(d.Bounds) {
			return true
		}
	}
	return false
}

// DefaultPosition 主屏右上角，向内缩进 margin
func DefaultPosition(primary Display, size, margin int) image.Point {
	b := primary.Bounds
	return image.Pt(b.Min.X+b.Dx()-size-margin, b.Min.Y+margin)
}

// Resolve 决定初始位置：
//  1. 没有保存过位置 -> 默认位置
//  2. 保存的位置中心不在任何显示器上 (比如拔掉了副屏) -> 默认位置
//  3. 否则沿用保存的位置
func Resolve(saved *image.Point, displays []Display, size, margin int) image.Point {
	if saved != nil && Visible(displays, *saved, size) {
		return *saved
	}
	return DefaultPosition(Primary(displays), size, margin)
}

// ByName 按名字找显示器 (Linux 下是 xrandr 的输出名，例如 HDMI-1)
func ByName(displays []Display, name string) (Display, bool) {
	if name == "" {
		return Display{}, false
	}
	for _, d := range displays {
		if d.Name == name {
			return d, true
		}
	}
	return Display{}, false
}

// At 包含某点的显示器
func At(displays []Display, p image.Point) (Display, bool) {
	for _, d := range displays {
		if p.In(d.Bounds) {
			return d, true
		}
	}
	return Display{}, false
}
