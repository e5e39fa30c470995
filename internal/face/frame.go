// Package face 描述表盘的一帧：给定时间点，算出要画的所有形状和文字。
// 这里只做纯计算，真正画到屏幕上的是 render 包
package face

import (
	"image"
	"image/color"
	"time"

	"github.com/inchinet/Liquid-glass-clock/internal/clock"
	"github.com/inchinet/Liquid-glass-clock/internal/entity"
	"github.com/inchinet/Liquid-glass-clock/internal/lunar"
)

// 玻璃圆盘
const (
	GlassRadius     = 140.0
	OuterRimRadius  = 140.0
	OuterRimWidth   = 2.0
	InnerRimRadius  = 135.0
	InnerRimWidth   = 4.0
	TickWidth       = 2.0
	CapRadius       = 4.0
	PanelCornerSize = 15.0
)

var (
	// 光源在左上，渐变中心偏移到 (100,100)
	GlassGradient = RadialGradient{
		Center: Vec{100, 100},
		Radius: 200,
		Stops: []Stop{
			{0, color.NRGBA{255, 255, 255, 180}},  // 高光
			{0.5, color.NRGBA{255, 255, 255, 40}}, // 主体透明
			{1, color.NRGBA{255, 255, 255, 100}},  // 边缘稍亮
		},
	}
	OuterRimColor = color.NRGBA{255, 255, 255, 200}
	InnerRimColor = color.NRGBA{255, 255, 255, 50}
	TickColor     = color.NRGBA{255, 255, 255, 180}

	// 日期面板：圆心下方 5 个单位开始，200x85
	Panel         = Rect{X: 50, Y: 155, W: 200, H: 85}
	PanelGradient = RadialGradient{
		Center: Vec{150, 220},
		Radius: 80,
		Stops: []Stop{
			{0, color.NRGBA{0, 0, 0, 80}},
			{1, color.NRGBA{0, 0, 0, 40}},
		},
	}
	TextColor = color.NRGBA{200, 225, 255, 255} // 浅蓝紫

	HandStroke  = color.NRGBA{50, 50, 50, 200}
	HandFill    = color.NRGBA{240, 240, 240, 255}
	SecondFill  = color.NRGBA{200, 50, 50, 255}
	CapColor    = color.NRGBA{255, 255, 255, 255}
	ButtonColor = color.NRGBA{100, 100, 100, 200}
	GlyphColor  = color.NRGBA{255, 255, 255, 255}
)

// 指针形状，局部坐标：原点在轴心，负 y 指向 12 点
var (
	hourShape   = []Vec{{-4, 0}, {-2, -60}, {0, -65}, {2, -60}, {4, 0}}
	minuteShape = []Vec{{-3, 0}, {-1, -90}, {0, -95}, {1, -90}, {3, 0}}
	secondShape = []Vec{{-1, 20}, {-1, -100}, {1, -100}, {1, 20}} // 带一截尾巴
)

// Hand 一根指针
type Hand struct {
	Name        string
	Angle       float64 // 度，0 指向 12 点，顺时针
	Shape       []Vec
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
}

// Polygon 旋转并平移到表盘中心后的多边形
func (h Hand) Polygon() []Vec {
	pts := make([]Vec, len(h.Shape))
	for i, p := range h.Shape {
		pts[i] = Center.Add(p.Rotate(h.Angle))
	}
	return pts
}

// TextLine 面板里居中的一行字
type TextLine struct {
	Text string
	Box  Rect    // 居中对齐的区域
	Size float64 // 设计坐标里的字高
}

// Button 右上/左上角的圆形按钮
type Button struct {
	Name  string
	Rect  image.Rectangle // 命中区域，同时也是圆的外接矩形
	Glyph string
}

// Contains 设计坐标里的点是否落在按钮矩形内
func (b Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

var (
	MinimizeButton = Button{Name: "minimize", Rect: image.Rect(10, 10, 34, 34), Glyph: "_"}
	CloseButton    = Button{Name: "close", Rect: image.Rect(266, 10, 290, 34), Glyph: "X"}
)

// Frame 一帧要画的全部内容
type Frame struct {
	Angles clock.Angles

	Hands   []Hand // 时、分、秒，按绘制顺序
	Lines   []TextLine
	Ticks   []Tick
	Buttons []Button
}

// Compose 由时间点算出一帧；不读系统时钟，方便用固定时间测试
func Compose(now time.Time, conv lunar.Converter) Frame {
	r := entity.NewReading(now)
	angles := clock.HandAngles(r)
	ld := conv.Convert(r.Year, r.Month, r.Day)

	return Frame{
		Angles: angles,
		Hands: []Hand{
			{Name: "hour", Angle: angles.Hour, Shape: hourShape, Fill: HandFill, Stroke: HandStroke, StrokeWidth: 2},
			{Name: "minute", Angle: angles.Minute, Shape: minuteShape, Fill: HandFill, Stroke: HandStroke, StrokeWidth: 2},
			{Name: "second", Angle: angles.Second, Shape: secondShape, Fill: SecondFill, Stroke: HandStroke, StrokeWidth: 1},
		},
		Lines: []TextLine{
			{Text: clock.DateString(now), Box: Rect{Panel.X, Panel.Y + 5, Panel.W, 25}, Size: 15},
			{Text: clock.TimeString(now), Box: Rect{Panel.X, Panel.Y + 30, Panel.W, 25}, Size: 16},
			{Text: lunar.String(ld), Box: Rect{Panel.X, Panel.Y + 55, Panel.W, 25}, Size: 14},
		},
		Ticks:   Ticks(),
		Buttons: []Button{MinimizeButton, CloseButton},
	}
}

// GlassMesh 玻璃圆盘的渐变网格
func GlassMesh() Mesh {
	return Disc(Center, GlassRadius, 10, 96, GlassGradient.At)
}

// PanelMesh 日期面板的渐变网格
func PanelMesh() Mesh {
	return Fan(Panel.Center(), RoundedRect(Panel, PanelCornerSize, 6), PanelGradient.At)
}
