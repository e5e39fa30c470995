package clock

import "time"

const (
	dateLayout = "2006/01/02 Mon" // 2024/02/10 Sat
	timeLayout = "03:04:05 PM"    // 12 小时制，补零，带 AM/PM
)

// DateString 日期行
func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

// TimeString 时间行
func TimeString(t time.Time) string {
	return t.Format(timeLayout)
}
