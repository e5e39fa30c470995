// Package render 把 face.Frame 画到 ebiten 画布上
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/inchinet/Liquid-glass-clock/internal/face"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// 带中文字形的点阵字体，农历那一行要用
	fontFace = text.NewGoXFace(bitmapfont.FaceChinese)
	// 点阵字体的原始字高
	fontPixels = float64(bitmapfont.FaceChinese.Metrics().Height.Ceil())
)

func init() {
	whiteImage.Fill(color.White)
}

// Painter 负责缩放；网格不随时间变化，只算一次
type Painter struct {
	glass face.Mesh
	panel face.Mesh
}

func NewPainter() *Painter {
	return &Painter{
		glass: face.GlassMesh(),
		panel: face.PanelMesh(),
	}
}

// Paint 整帧重画，不保留上一帧的任何状态
func (p *Painter) Paint(dst *ebiten.Image, f face.Frame) {
	b := dst.Bounds()
	s := face.Scale(b.Dx(), b.Dy())

	// 1. 玻璃圆盘 + 两圈边缘
	drawMesh(dst, p.glass, s)
	strokeCircle(dst, face.Center, face.OuterRimRadius, face.OuterRimWidth, face.OuterRimColor, s)
	strokeCircle(dst, face.Center, face.InnerRimRadius, face.InnerRimWidth, face.InnerRimColor, s)

	// 2. 刻度
	for _, tk := range f.Ticks {
		vector.StrokeLine(dst,
			float32(tk.From.X*s), float32(tk.From.Y*s),
			float32(tk.To.X*s), float32(tk.To.Y*s),
			float32(face.TickWidth*s), face.TickColor, true)
	}

	// 3. 日期面板和三行字
	drawMesh(dst, p.panel, s)
	for _, line := range f.Lines {
		drawText(dst, line.Text, line.Box, line.Size, face.TextColor, s)
	}

	// 4. 指针，最后盖上中心圆点
	for _, h := range f.Hands {
		drawHand(dst, h, s)
	}
	vector.DrawFilledCircle(dst, float32(face.Center.X*s), float32(face.Center.Y*s), float32(face.CapRadius*s), face.CapColor, true)

	// 5. 按钮
	for _, btn := range f.Buttons {
		r := btn.Rect
		c := face.Vec{X: float64(r.Min.X+r.Max.X) / 2, Y: float64(r.Min.Y+r.Max.Y) / 2}
		vector.DrawFilledCircle(dst, float32(c.X*s), float32(c.Y*s), float32(float64(r.Dx())/2*s), face.ButtonColor, true)
		box := face.Rect{X: float64(r.Min.X), Y: float64(r.Min.Y), W: float64(r.Dx()), H: float64(r.Dy())}
		drawText(dst, btn.Glyph, box, 14, face.GlyphColor, s)
	}
}

func drawMesh(dst *ebiten.Image, m face.Mesh, s float64) {
	vs := make([]ebiten.Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		vs[i] = ebiten.Vertex{
			DstX:   float32(v.Pos.X * s),
			DstY:   float32(v.Pos.Y * s),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(v.Color.R) / 0xff,
			ColorG: float32(v.Color.G) / 0xff,
			ColorB: float32(v.Color.B) / 0xff,
			ColorA: float32(v.Color.A) / 0xff,
		}
	}
	// 顶点颜色是非预乘的，用默认的 ColorScaleModeStraightAlpha
	dst.DrawTriangles(vs, m.Indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawHand(dst *ebiten.Image, h face.Hand, s float64) {
	var path vector.Path
	for i, pt := range h.Polygon() {
		if i == 0 {
			path.MoveTo(float32(pt.X*s), float32(pt.Y*s))
			continue
		}
		path.LineTo(float32(pt.X*s), float32(pt.Y*s))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	fillVertices(dst, vs, is, h.Fill)

	stroke := &vector.StrokeOptions{Width: float32(h.StrokeWidth * s), LineJoin: vector.LineJoinRound}
	vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, stroke)
	fillVertices(dst, vs, is, h.Stroke)
}

func strokeCircle(dst *ebiten.Image, c face.Vec, r, width float64, clr color.Color, s float64) {
	vector.StrokeCircle(dst, float32(c.X*s), float32(c.Y*s), float32(r*s), float32(width*s), clr, true)
}

func fillVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.NRGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawText 在 box 里水平、垂直居中
func drawText(dst *ebiten.Image, str string, box face.Rect, size float64, clr color.Color, s float64) {
	k := size / fontPixels * s
	c := box.Center()

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(c.X*s, c.Y*s)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	text.Draw(dst, str, fontFace, op)
}
