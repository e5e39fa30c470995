// Package widget 挂件的交互逻辑：初始摆放、按钮命中、拖拽、保存位置。
// 不依赖 ebiten，窗口操作通过 Window 接口注入
package widget

import (
	"image"
	"log/slog"

	"github.com/inchinet/Liquid-glass-clock/config"
	"github.com/inchinet/Liquid-glass-clock/internal/entity"
	"github.com/inchinet/Liquid-glass-clock/internal/face"
	"github.com/inchinet/Liquid-glass-clock/internal/monitor"
)

// Window 挂件需要的窗口操作，位置用全局坐标 (见 GlobalWindow)
type Window interface {
	Position() image.Point
	SetPosition(p image.Point)
	Minimize()
}

// Action 一次按下产生的效果
type Action int

const (
	ActionNone Action = iota
	ActionMinimize
	ActionClose
	ActionDrag
)

func (a Action) String() string {
	switch a {
	case ActionMinimize:
		return "minimize"
	case ActionClose:
		return "close"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

type Widget struct {
	state   entity.Widget
	win     Window
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	closing bool
}

func New(win Window, cfg *config.Config, cfgPath string, logger *slog.Logger) *Widget {
	return &Widget{
		state:   entity.Widget{Active: cfg.Active},
		win:     win,
		cfg:     cfg,
		cfgPath: cfgPath,
		logger:  logger,
	}
}

// Place 根据保存的位置和当前显示器决定初始位置，并移动窗口
func (w *Widget) Place(displays []monitor.Display) image.Point {
	saved := w.cfg.Position()
	pos := monitor.Resolve(saved, displays, entity.WidgetSize, entity.DefaultMargin)
	if saved != nil && pos != *saved {
		w.logger.Info("saved position is off-screen, using default", "saved", *saved, "position", pos)
	}
	w.state.Position = pos
	w.win.SetPosition(pos)
	return pos
}

// Position 当前窗口左上角
func (w *Widget) Position() image.Point { return w.state.Position }

// Dragging 是否正在拖拽
func (w *Widget) Dragging() bool { return w.state.IsDragging }

// Closing 是否已经请求退出
func (w *Widget) Closing() bool { return w.closing }

// PointerDown 左键按下。local 是窗口内的设备坐标，scale 是当前缩放系数
func (w *Widget) PointerDown(local image.Point, scale float64) Action {
	p := face.ToDesign(local, scale)

	switch {
	case face.MinimizeButton.Contains(p):
		w.win.Minimize()
		return ActionMinimize
	case face.CloseButton.Contains(p):
		w.Close()
		return ActionClose
	}

	// 记录鼠标屏幕位置相对于窗口左上角的偏移
	origin := w.win.Position()
	screen := origin.Add(local)
	w.state.Position = origin
	w.state.IsDragging = true
	w.state.DragOffset = screen.Sub(origin)
	return ActionDrag
}

// PointerMove 拖拽中：新位置 = 鼠标屏幕位置 - 偏移，不做屏幕边界限制
func (w *Widget) PointerMove(local image.Point) {
	if !w.state.IsDragging {
		return
	}
	screen := w.win.Position().Add(local)
	pos := screen.Sub(w.state.DragOffset)
	if pos == w.state.Position {
		return
	}
	w.state.Position = pos
	w.win.SetPosition(pos)
}

// PointerUp 结束拖拽并立刻保存位置
func (w *Widget) PointerUp() {
	if !w.state.IsDragging {
		return
	}
	w.state.IsDragging = false
	w.Persist()
}

// Input 一帧的输入快照，由 game 包从 ebiten 读出来
type Input struct {
	CloseRequested bool // 系统要求关闭窗口
	Escape         bool // ESC 刚按下
	JustPressed    bool // 左键刚按下
	Pressed        bool // 左键按住
	Cursor         image.Point
	Scale          float64
}

// Handle 处理一帧输入，返回 true 表示该退出了
func (w *Widget) Handle(in Input) bool {
	if in.CloseRequested || in.Escape {
		w.Close()
	}
	if w.closing {
		return true
	}

	switch {
	case in.JustPressed:
		action := w.PointerDown(in.Cursor, in.Scale)
		w.logger.Debug("pointer down", "x", in.Cursor.X, "y", in.Cursor.Y, "action", action)
	case in.Pressed:
		w.PointerMove(in.Cursor)
	case w.state.IsDragging:
		// 松开 (包括窗口失焦时丢掉的松开事件)
		w.PointerUp()
	}
	return w.closing
}

// Close 关闭按钮、系统关闭窗口、ESC 都走这里：先保存再退出
func (w *Widget) Close() {
	if w.closing {
		return
	}
	w.state.IsDragging = false
	w.Persist()
	w.closing = true
}

// Persist 把窗口当前位置和 Active 写回配置文件。写失败只记日志
func (w *Widget) Persist() {
	w.state.Position = w.win.Position()
	w.cfg.SetPosition(w.state.Position)
	w.cfg.Active = w.state.Active
	if err := config.Save(w.cfg, w.cfgPath); err != nil {
		w.logger.Warn("save config failed", "path", w.cfgPath, "error", err)
		return
	}
	w.logger.Debug("config saved", "x", w.state.Position.X, "y", w.state.Position.Y)
}
