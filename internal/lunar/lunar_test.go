package lunar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inchinet/Liquid-glass-clock/internal/entity"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "正月", MonthName(1))
	assert.Equal(t, "十二月", MonthName(12))
	assert.Equal(t, "0", MonthName(0))
	assert.Equal(t, "13", MonthName(13))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "初一", DayName(1))
	assert.Equal(t, "廿一", DayName(21))
	assert.Equal(t, "三十", DayName(30))
	assert.Equal(t, "31", DayName(31))
	assert.Equal(t, "-1", DayName(-1))
}

func TestString(t *testing.T) {
	assert.Equal(t, "八月十五", String(entity.LunarDate{Month: 8, Day: 15}))
	assert.Equal(t, "13初一", String(entity.LunarDate{Month: 13, Day: 1}))
}

func TestCalendarConvert(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		month int
		day   int
	}{
		// 2024 春节
		{"spring festival 2024", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 1, 1},
		// 2023 中秋
		{"mid-autumn 2023", time.Date(2023, time.September, 29, 0, 0, 0, 0, time.UTC), 8, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calendar{}.Convert(tt.date.Year(), tt.date.Month(), tt.date.Day())
			assert.Equal(t, tt.month, got.Month)
			assert.Equal(t, tt.day, got.Day)
			assert.False(t, got.Leap)
		})
	}
}

func TestFuncAdapter(t *testing.T) {
	var c Converter = Func(func(int, time.Month, int) entity.LunarDate {
		return entity.LunarDate{Month: 2, Day: 3}
	})
	assert.Equal(t, "二月初三", String(c.Convert(2024, time.January, 1)))
}
