package clock

import (
	"math"

	"github.com/inchinet/Liquid-glass-clock/internal/entity"
)

// Angles 三根指针的角度 (度)，0 度指向正上方，顺时针增加，范围 [0, 360)
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// HandAngles 把时钟读数换算成指针角度
//
//	时针 = 30 * (hour mod 12 + minute/60)
//	分针 = 6 * (minute + second/60)
//	秒针 = 6 * second   (整秒跳动，不带亚秒)
func HandAngles(r entity.Reading) Angles {
	return Angles{
		Hour:   normalize(30 * (float64(r.Hour%12) + float64(r.Minute)/60)),
		Minute: normalize(6 * (float64(r.Minute) + float64(r.Second)/60)),
		Second: normalize(6 * float64(r.Second)),
	}
}

// normalize 收敛到 [0, 360)
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
