package widget

import (
	"image"

	"github.com/inchinet/Liquid-glass-clock/internal/entity"
	"github.com/inchinet/Liquid-glass-clock/internal/monitor"
)

// Screen 窗口系统的原生窗口操作。
// 位置都相对于窗口当前所在显示器的左上角 (ebiten 在桌面平台上就是这样)；
// 启动前的"当前显示器"是窗口将要出现的那块
type Screen interface {
	Monitor() string
	// SelectMonitor 指定窗口所在的显示器，找不到时返回 false
	SelectMonitor(name string) bool
	Position() image.Point
	SetPosition(p image.Point)
	Minimize()
}

// GlobalWindow 把 Screen 的显示器相对坐标换算成全局坐标，
// 配置文件和显示器列表用的都是全局坐标
type GlobalWindow struct {
	screen   Screen
	displays []monitor.Display
}

func NewGlobalWindow(screen Screen, displays []monitor.Display) *GlobalWindow {
	return &GlobalWindow{screen: screen, displays: displays}
}

// origin 当前显示器左上角的全局坐标；名字对不上时按 (0,0)
func (g *GlobalWindow) origin() image.Point {
	if d, ok := monitor.ByName(g.displays, g.screen.Monitor()); ok {
		return d.Bounds.Min
	}
	return image.Point{}
}

func (g *GlobalWindow) Position() image.Point {
	return g.screen.Position().Add(g.origin())
}

// SetPosition p 是全局坐标。
// 挂件中心所在的显示器和当前显示器不同时先切过去，
// 启动前的初始位置会被限制在当前显示器里
func (g *GlobalWindow) SetPosition(p image.Point) {
	center := p.Add(image.Pt(entity.WidgetSize/2, entity.WidgetSize/2))
	if d, ok := monitor.At(g.displays, center); ok && d.Name != g.screen.Monitor() {
		g.screen.SelectMonitor(d.Name)
	}
	g.screen.SetPosition(p.Sub(g.origin()))
}

func (g *GlobalWindow) Minimize() { g.screen.Minimize() }
