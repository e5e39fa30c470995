package lunar

import (
	"strconv"

	"github.com/inchinet/Liquid-glass-clock/internal/entity"
)

var monthNames = [...]string{
	"正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

var dayNames = [...]string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

// MonthName 1-12 查表，超出范围直接输出数字
func MonthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return strconv.Itoa(month)
	}
	return monthNames[month-1]
}

// DayName 1-30 查表，超出范围直接输出数字
func DayName(day int) string {
	if day < 1 || day > len(dayNames) {
		return strconv.Itoa(day)
	}
	return dayNames[day-1]
}

// String 面板上显示的农历，例如 "正月初一"
func String(d entity.LunarDate) string {
	return MonthName(d.Month) + DayName(d.Day)
}
