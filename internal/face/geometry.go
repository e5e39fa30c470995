package face

import (
	"image"
	"math"
)

// 所有图形都画在 300x300 的设计坐标里，绘制时统一缩放到实际窗口
const DesignSize = 300

// Center 表盘圆心
var Center = Vec{150, 150}

// Vec 设计坐标里的点
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Rotate 绕原点顺时针旋转 (屏幕坐标 y 向下)，0 度不动
func (v Vec) Rotate(deg float64) Vec {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Dist 两点距离
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Scale 统一缩放系数 = min(宽, 高) / 300
func Scale(width, height int) float64 {
	return float64(min(width, height)) / DesignSize
}

// ToDesign 把窗口内的设备坐标换算回设计坐标 (截断取整)
func ToDesign(p image.Point, scale float64) image.Point {
	if scale <= 0 {
		return p
	}
	return image.Pt(int(float64(p.X)/scale), int(float64(p.Y)/scale))
}

// Tick 一条刻度线
type Tick struct {
	From, To Vec
}

// Ticks 12 个刻度，每 30 度一个，从 12 点方向顺时针
func Ticks() []Tick {
	ticks := make([]Tick, 0, 12)
	for i := 1; i <= 12; i++ {
		deg := float64(i) * 30
		ticks = append(ticks, Tick{
			From: Center.Add(Vec{0, -135}.Rotate(deg)),
			To:   Center.Add(Vec{0, -125}.Rotate(deg)),
		})
	}
	return ticks
}

// RoundedRect 圆角矩形的轮廓点，顺时针，每个角用 segments 段折线近似
func RoundedRect(r Rect, radius float64, segments int) []Vec {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	corners := []struct {
		c     Vec
		start float64
	}{
		{Vec{r.X + r.W - radius, r.Y + radius}, -90},     // 右上
		{Vec{r.X + r.W - radius, r.Y + r.H - radius}, 0}, // 右下
		{Vec{r.X + radius, r.Y + r.H - radius}, 90},      // 左下
		{Vec{r.X + radius, r.Y + radius}, 180},           // 左上
	}
	pts := make([]Vec, 0, 4*(segments+1))
	for _, corner := range corners {
		for i := 0; i <= segments; i++ {
			a := (corner.start + 90*float64(i)/float64(segments)) * math.Pi / 180
			pts = append(pts, Vec{corner.c.X + radius*math.Cos(a), corner.c.Y + radius*math.Sin(a)})
		}
	}
	return pts
}

// Rect 设计坐标里的浮点矩形
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }
