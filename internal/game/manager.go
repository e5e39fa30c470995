package game

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/inchinet/Liquid-glass-clock/internal/face"
	"github.com/inchinet/Liquid-glass-clock/internal/lunar"
	"github.com/inchinet/Liquid-glass-clock/internal/render"
	"github.com/inchinet/Liquid-glass-clock/internal/widget"
)

const (
	// 平时每 100ms 刷新一次就够了
	IdleTPS = 10
	// 拖拽时开启 60 帧丝滑模式
	DragTPS = 60
)

// Manager 实现 ebiten.Game，把输入交给 widget，把画面交给 render
type Manager struct {
	widget  *widget.Widget
	painter *render.Painter
	lunar   lunar.Converter
	now     func() time.Time

	tps int
}

func New(w *widget.Widget, conv lunar.Converter) *Manager {
	return &Manager{
		widget:  w,
		painter: render.NewPainter(),
		lunar:   conv,
		now:     time.Now,
		tps:     IdleTPS,
	}
}

func (g *Manager) Update() error {
	// 只负责读 ebiten 的状态，怎么处理交给 widget
	// CursorPosition 是相对于窗口左上角的坐标
	mx, my := ebiten.CursorPosition()
	quit := g.widget.Handle(widget.Input{
		CloseRequested: ebiten.IsWindowBeingClosed(),
		Escape:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		JustPressed:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Cursor:         image.Pt(mx, my),
		Scale:          g.scale(),
	})
	if quit {
		return ebiten.Termination
	}

	// 动态调整 TPS
	g.setTPS()
	return nil
}

func (g *Manager) setTPS() {
	tps := IdleTPS
	if g.widget.Dragging() {
		tps = DragTPS
	}
	if tps != g.tps {
		g.tps = tps
		ebiten.SetTPS(tps)
	}
}

// scale 当前窗口相对 300x300 设计坐标的缩放
func (g *Manager) scale() float64 {
	w, h := ebiten.WindowSize()
	return face.Scale(w, h)
}

func (g *Manager) Draw(screen *ebiten.Image) {
	// 每帧整张重画，背景保持透明
	g.painter.Paint(screen, face.Compose(g.now(), g.lunar))
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 告诉 Ebiten 画布大小就是窗口大小
	return outsideWidth, outsideHeight
}
