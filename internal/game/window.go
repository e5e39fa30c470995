package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/inchinet/Liquid-glass-clock/internal/monitor"
)

// Screen 用 ebiten 的全局窗口函数实现 widget.Screen。
// ebiten 的窗口位置相对于窗口当前所在的显示器
type Screen struct{}

func (Screen) Monitor() string {
	if m := ebiten.Monitor(); m != nil {
		return m.Name()
	}
	return ""
}

// SelectMonitor 启动前决定窗口出现在哪块显示器上；运行中会把窗口移过去
func (Screen) SelectMonitor(name string) bool {
	for _, m := range ebiten.AppendMonitors(nil) {
		if m.Name() == name {
			ebiten.SetMonitor(m)
			return true
		}
	}
	return false
}

// Position 注意 ebiten.WindowPosition 在主循环开始前调用会 panic
func (Screen) Position() image.Point {
	x, y := ebiten.WindowPosition()
	return image.Pt(x, y)
}

func (Screen) SetPosition(p image.Point) {
	ebiten.SetWindowPosition(p.X, p.Y)
}

func (Screen) Minimize() {
	ebiten.MinimizeWindow()
}

// Displays 只知道当前显示器的大小，当作原点在 (0,0) 的主显示器。
// X11 枚举失败时的退路；只有一块显示器时和全局坐标一致
var Displays = monitor.ProviderFunc(func() ([]monitor.Display, error) {
	m := ebiten.Monitor()
	if m == nil {
		return nil, monitor.ErrNoDisplays
	}
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return nil, monitor.ErrNoDisplays
	}
	return []monitor.Display{{Name: m.Name(), Bounds: image.Rect(0, 0, w, h), Primary: true}}, nil
})
