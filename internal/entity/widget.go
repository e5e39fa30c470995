package entity

import "image"

// 窗口尺寸与默认边距 (单位：设备无关像素)
const (
	WidgetSize    = 200
	DefaultMargin = 50
)

// Widget 挂件的运行时状态
type Widget struct {
	Position image.Point // 窗口左上角
	Active   int         // 配置里的 Active，目前只存不用

	IsDragging bool
	DragOffset image.Point // 按下时：鼠标屏幕坐标 - 窗口左上角
}
