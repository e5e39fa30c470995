package entity

import "time"

// Reading 一帧的时钟读数，每次重绘时从传入的时间点重新推导，不跨帧保存
type Reading struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday

	Hour       int // 0-23
	Minute     int
	Second     int
	Nanosecond int // 亚秒部分，秒针角度不使用
}

// LunarDate 农历月日 (月 1-12，日 1-30)
type LunarDate struct {
	Month int
	Day   int
	Leap  bool // 闰月
}

// NewReading 从时间点拆出各个字段
func NewReading(t time.Time) Reading {
	return Reading{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Weekday:    t.Weekday(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}
