// Package lunar 公历转农历，以及农历月日的中文名称
package lunar

import (
	"time"

	"github.com/6tail/lunar-go/calendar"

	"github.com/inchinet/Liquid-glass-clock/internal/entity"
)

// Converter 公历日期 -> 农历月日，视为纯函数，不会失败
type Converter interface {
	Convert(year int, month time.Month, day int) entity.LunarDate
}

// Calendar 基于 6tail/lunar-go 的实现
type Calendar struct{}

func (Calendar) Convert(year int, month time.Month, day int) entity.LunarDate {
	l := calendar.NewSolarFromYmd(year, int(month), day).GetLunar()

	// lunar-go 用负数表示闰月
	m := l.GetMonth()
	leap := m < 0
	if leap {
		m = -m
	}
	return entity.LunarDate{Month: m, Day: l.GetDay(), Leap: leap}
}

// Func 让普通函数满足 Converter，测试里用来替换真实农历
type Func func(year int, month time.Month, day int) entity.LunarDate

func (f Func) Convert(year int, month time.Month, day int) entity.LunarDate {
	return f(year, month, day)
}
