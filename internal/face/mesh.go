package face

import (
	"image/color"
	"math"
)

// Vertex 带颜色的顶点，颜色逐顶点插值，渐变就靠它
type Vertex struct {
	Pos   Vec
	Color color.NRGBA
}

// Mesh 三角形网格
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Fan 以 center 为中心、连到一圈轮廓点的扇形网格，适用于凸多边形
func Fan(center Vec, ring []Vec, paint func(Vec) color.NRGBA) Mesh {
	m := Mesh{Vertices: make([]Vertex, 0, len(ring)+1)}
	m.Vertices = append(m.Vertices, Vertex{center, paint(center)})
	for _, p := range ring {
		m.Vertices = append(m.Vertices, Vertex{p, paint(p)})
	}
	n := uint16(len(ring))
	for i := uint16(0); i < n; i++ {
		m.Indices = append(m.Indices, 0, 1+i, 1+(i+1)%n)
	}
	return m
}

// Disc 同心环组成的圆盘。
// 只有一圈的扇形在大半径上插值太粗，径向渐变会失真，所以按环细分
func Disc(center Vec, radius float64, rings, segments int, paint func(Vec) color.NRGBA) Mesh {
	var m Mesh
	m.Vertices = append(m.Vertices, Vertex{center, paint(center)})
	for r := 1; r <= rings; r++ {
		rad := radius * float64(r) / float64(rings)
		for s := 0; s < segments; s++ {
			a := 2 * math.Pi * float64(s) / float64(segments)
			p := Vec{center.X + rad*math.Cos(a), center.Y + rad*math.Sin(a)}
			m.Vertices = append(m.Vertices, Vertex{p, paint(p)})
		}
	}

	seg := uint16(segments)
	ring := func(r, s int) uint16 { return 1 + uint16(r)*seg + uint16(s)%seg }
	// 最内圈和圆心连成扇形
	for s := 0; s < segments; s++ {
		m.Indices = append(m.Indices, 0, ring(0, s), ring(0, s+1))
	}
	// 相邻两圈之间是四边形，拆成两个三角形
	for r := 1; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a, b := ring(r-1, s), ring(r-1, s+1)
			c, d := ring(r, s), ring(r, s+1)
			m.Indices = append(m.Indices, a, c, d, a, d, b)
		}
	}
	return m
}
