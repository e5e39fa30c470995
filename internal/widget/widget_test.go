package widget

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inchinet/Liquid-glass-clock/config"
	"github.com/inchinet/Liquid-glass-clock/internal/logging"
	"github.com/inchinet/Liquid-glass-clock/internal/monitor"
)

// fakeWindow 记录窗口操作
type fakeWindow struct {
	pos       image.Point
	minimized bool
	moves     []image.Point
}

func (f *fakeWindow) Position() image.Point { return f.pos }

func (f *fakeWindow) SetPosition(p image.Point) {
	f.pos = p
	f.moves = append(f.moves, p)
}

func (f *fakeWindow) Minimize() { f.minimized = true }

var fullHD = []monitor.Display{{Name: "primary", Bounds: image.Rect(0, 0, 1920, 1080), Primary: true}}

// 200x200 窗口对应的缩放
const scale = 200.0 / 300.0

func newWidget(t *testing.T, cfg *config.Config) (*Widget, *fakeWindow, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	win := &fakeWindow{}
	return New(win, cfg, path, logging.Discard()), win, path
}

func loadSaved(t *testing.T, path string) *config.Config {
	t.Helper()
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func TestPlaceWithoutConfigUsesTopRight(t *testing.T) {
	w, win, _ := newWidget(t, config.NewDefault())
	pos := w.Place(fullHD)
	assert.Equal(t, image.Pt(1670, 50), pos)
	assert.Equal(t, image.Pt(1670, 50), win.pos)
}

func TestPlaceResetsOffscreenPosition(t *testing.T) {
	cfg, err := config.Parse([]byte("[Settings]\nWindowX = 5000\nWindowY = 5000\n"))
	require.NoError(t, err)

	w, win, _ := newWidget(t, cfg)
	assert.Equal(t, image.Pt(1670, 50), w.Place(fullHD))
	assert.Equal(t, image.Pt(1670, 50), win.pos)
}

func TestPlaceKeepsVisiblePosition(t *testing.T) {
	cfg := config.NewDefault()
	cfg.SetPosition(image.Pt(400, 300))

	w, _, _ := newWidget(t, cfg)
	assert.Equal(t, image.Pt(400, 300), w.Place(fullHD))
}

func TestPointerDownOnMinimize(t *testing.T) {
	w, win, _ := newWidget(t, config.NewDefault())
	w.Place(fullHD)

	// 设计坐标 (21,21) 在最小化按钮里
	action := w.PointerDown(image.Pt(14, 14), scale)
	assert.Equal(t, ActionMinimize, action)
	assert.True(t, win.minimized)
	assert.False(t, w.Dragging())
	assert.False(t, w.Closing())
}

func TestPointerDownOnClosePersistsAndCloses(t *testing.T) {
	w, win, path := newWidget(t, config.NewDefault())
	w.Place(fullHD)
	win.pos = image.Pt(600, 400)

	// 设计坐标 (277,20) 在关闭按钮里
	action := w.PointerDown(image.Pt(185, 14), scale)
	assert.Equal(t, ActionClose, action)
	assert.True(t, w.Closing())
	assert.False(t, w.Dragging())

	saved := loadSaved(t, path)
	require.NotNil(t, saved.Position())
	assert.Equal(t, image.Pt(600, 400), *saved.Position())
}

func TestDragMovesWindowAndPersistsOnRelease(t *testing.T) {
	w, win, path := newWidget(t, config.NewDefault())
	w.Place(fullHD)

	action := w.PointerDown(image.Pt(100, 120), scale)
	require.Equal(t, ActionDrag, action)
	assert.True(t, w.Dragging())
	assert.Equal(t, image.Pt(100, 120), w.state.DragOffset)

	// 鼠标在窗口内移到 (130,100)：屏幕位置 = (1670+130, 50+100)
	w.PointerMove(image.Pt(130, 100))
	assert.Equal(t, image.Pt(1700, 30), win.pos)
	assert.Equal(t, image.Pt(1700, 30), w.Position())

	// 窗口跟上以后鼠标相对位置回到偏移量，不再移动
	w.PointerMove(image.Pt(100, 120))
	assert.Equal(t, image.Pt(1700, 30), win.pos)

	// 拖出屏幕也不限制
	w.PointerMove(image.Pt(100+400, 120))
	assert.Equal(t, image.Pt(2100, 30), win.pos)

	// 松开前还没写文件
	assert.Nil(t, loadSaved(t, path).Position())

	w.PointerUp()
	assert.False(t, w.Dragging())
	saved := loadSaved(t, path)
	require.NotNil(t, saved.Position())
	assert.Equal(t, image.Pt(2100, 30), *saved.Position())
	assert.Equal(t, 1, saved.Active)
}

func TestMoveAndReleaseWithoutDragAreIgnored(t *testing.T) {
	w, win, path := newWidget(t, config.NewDefault())
	w.Place(fullHD)
	moves := len(win.moves)

	w.PointerMove(image.Pt(50, 50))
	w.PointerUp()
	assert.Len(t, win.moves, moves)
	assert.Nil(t, loadSaved(t, path).Position())
}

func TestCloseIsIdempotent(t *testing.T) {
	w, win, path := newWidget(t, config.NewDefault())
	w.Place(fullHD)

	w.Close()
	win.pos = image.Pt(1, 1)
	w.Close()

	assert.True(t, w.Closing())
	assert.Equal(t, image.Pt(1670, 50), *loadSaved(t, path).Position())
}

func TestPersistRoundTripThroughPlace(t *testing.T) {
	w, win, path := newWidget(t, config.NewDefault())
	w.Place(fullHD)
	win.pos = image.Pt(800, 600)
	w.Persist()

	reloaded := New(&fakeWindow{}, loadSaved(t, path), path, logging.Discard())
	assert.Equal(t, image.Pt(800, 600), reloaded.Place(fullHD))
}

func TestPersistKeepsInactiveFlag(t *testing.T) {
	cfg, err := config.Parse([]byte("[Settings]\nActive = 0\n"))
	require.NoError(t, err)

	w, _, path := newWidget(t, cfg)
	w.Place(fullHD)
	w.Persist()
	assert.Equal(t, 0, loadSaved(t, path).Active)
}

func TestPersistFailureIsNotFatal(t *testing.T) {
	win := &fakeWindow{}
	w := New(win, config.NewDefault(), filepath.Join(t.TempDir(), "missing", config.FileName), logging.Discard())
	w.Place(fullHD)
	w.Close()
	assert.True(t, w.Closing())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "minimize", ActionMinimize.String())
	assert.Equal(t, "close", ActionClose.String())
	assert.Equal(t, "drag", ActionDrag.String())
	assert.Equal(t, "none", ActionNone.String())
}

func TestHandle(t *testing.T) {
	body := image.Pt(100, 120)    // 设计坐标 (150,180)，表盘上
	closeBtn := image.Pt(185, 14) // 设计坐标 (277,21)
	minimize := image.Pt(14, 14)  // 设计坐标 (21,21)

	tests := []struct {
		name      string
		steps     []Input
		wantQuit  bool
		wantDrag  bool
		wantPos   image.Point
		wantSaved bool
		wantMin   bool
	}{
		{
			name:      "escape persists and quits",
			steps:     []Input{{Escape: true}},
			wantQuit:  true,
			wantPos:   image.Pt(1670, 50),
			wantSaved: true,
		},
		{
			name:      "window close persists and quits",
			steps:     []Input{{CloseRequested: true}},
			wantQuit:  true,
			wantPos:   image.Pt(1670, 50),
			wantSaved: true,
		},
		{
			name:      "close button",
			steps:     []Input{{JustPressed: true, Pressed: true, Cursor: closeBtn, Scale: scale}},
			wantQuit:  true,
			wantPos:   image.Pt(1670, 50),
			wantSaved: true,
		},
		{
			name:    "minimize button does not drag",
			steps:   []Input{{JustPressed: true, Pressed: true, Cursor: minimize, Scale: scale}, {Pressed: true, Cursor: body, Scale: scale}},
			wantPos: image.Pt(1670, 50),
			wantMin: true,
		},
		{
			name:     "press starts drag",
			steps:    []Input{{JustPressed: true, Pressed: true, Cursor: body, Scale: scale}},
			wantDrag: true,
			wantPos:  image.Pt(1670, 50),
		},
		{
			name: "held button moves window",
			steps: []Input{
				{JustPressed: true, Pressed: true, Cursor: body, Scale: scale},
				{Pressed: true, Cursor: body.Add(image.Pt(-70, 30)), Scale: scale},
			},
			wantDrag: true,
			wantPos:  image.Pt(1600, 80),
		},
		{
			name: "release ends drag and persists",
			steps: []Input{
				{JustPressed: true, Pressed: true, Cursor: body, Scale: scale},
				{Pressed: true, Cursor: body.Add(image.Pt(-70, 30)), Scale: scale},
				{Cursor: body, Scale: scale},
			},
			wantPos:   image.Pt(1600, 80),
			wantSaved: true,
		},
		{
			name: "escape while dragging",
			steps: []Input{
				{JustPressed: true, Pressed: true, Cursor: body, Scale: scale},
				{Pressed: true, Cursor: body.Add(image.Pt(10, 10)), Scale: scale},
				{Pressed: true, Escape: true, Cursor: body.Add(image.Pt(50, 50)), Scale: scale},
			},
			wantQuit:  true,
			wantPos:   image.Pt(1680, 60),
			wantSaved: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, win, path := newWidget(t, config.NewDefault())
			w.Place(fullHD)

			var quit bool
			for _, in := range tt.steps {
				quit = w.Handle(in)
			}
			assert.Equal(t, tt.wantQuit, quit)
			assert.Equal(t, tt.wantQuit, w.Closing())
			assert.Equal(t, tt.wantDrag, w.Dragging())
			assert.Equal(t, tt.wantPos, win.pos)
			assert.Equal(t, tt.wantMin, win.minimized)

			saved := loadSaved(t, path).Position()
			if !tt.wantSaved {
				assert.Nil(t, saved)
				return
			}
			require.NotNil(t, saved)
			assert.Equal(t, tt.wantPos, *saved)
		})
	}
}

func TestHandleAfterCloseKeepsQuitting(t *testing.T) {
	w, win, _ := newWidget(t, config.NewDefault())
	w.Place(fullHD)
	require.True(t, w.Handle(Input{Escape: true}))

	moves := len(win.moves)
	assert.True(t, w.Handle(Input{JustPressed: true, Pressed: true, Cursor: image.Pt(100, 120), Scale: scale}))
	assert.False(t, w.Dragging())
	assert.Len(t, win.moves, moves)
}
