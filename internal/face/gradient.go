package face

import (
	"image/color"
	"math"
)

// Stop 渐变色标
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// RadialGradient 以 Center 为圆心、Radius 为半径的径向渐变
type RadialGradient struct {
	Center Vec
	Radius float64
	Stops  []Stop
}

// At 计算某点的颜色，超出半径按最后一个色标
func (g RadialGradient) At(p Vec) color.NRGBA {
	if g.Radius <= 0 {
		return g.colorAt(1)
	}
	return g.colorAt(p.Dist(g.Center) / g.Radius)
}

func (g RadialGradient) colorAt(t float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerp(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
