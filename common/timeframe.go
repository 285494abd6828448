package common

import (
	"fmt"
	"strconv"
	"time"
)

// weekEpochOffset 1970-01-04T00:00:00Z 的毫秒时间戳
// Unix 纪元是星期四，第一个星期日在三天（259200秒）之后，
// 周线周期以该时间点为对齐基准
const weekEpochOffset int64 = 259200 * 1000

// ParseTimeframe 解析时间框架为毫秒时长
// 月周期没有固定时长，返回错误，调用方需走日历对齐逻辑
func ParseTimeframe(timeframe string) (int64, error) {
	if timeframe == "" {
		return 0, fmt.Errorf("empty timeframe")
	}

	unit := timeframe[len(timeframe)-1:]
	amount, err := strconv.ParseInt(timeframe[:len(timeframe)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timeframe %q: %w", timeframe, err)
	}

	var scale int64
	switch unit {
	case "s":
		scale = 1000
	case "m":
		scale = 60 * 1000
	case "h":
		scale = 60 * 60 * 1000
	case "d":
		scale = 24 * 60 * 60 * 1000
	case "w":
		scale = 7 * 24 * 60 * 60 * 1000
	case "M":
		return 0, fmt.Errorf("timeframe %q has no fixed duration", timeframe)
	default:
		return 0, fmt.Errorf("invalid timeframe unit %q", unit)
	}

	return amount * scale, nil
}

// RoundTimeframe 将毫秒时间戳对齐到时间框架的周期边界
//
//   - 日内及日周期：按时长整除向下取整
//   - 周周期：对齐到不晚于该时刻的星期日零点（基准 1970-01-04T00:00:00Z）
//   - 月周期：对齐到当月一日零点，按日历推导，不使用固定时长
//
// after 为 true 时返回下一个周期边界
func RoundTimeframe(timeframe string, ts int64, after bool) (int64, error) {
	unit := timeframe[len(timeframe)-1:]

	if unit == "M" {
		amount, err := strconv.ParseInt(timeframe[:len(timeframe)-1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timeframe %q: %w", timeframe, err)
		}
		t := time.UnixMilli(ts).UTC()
		aligned := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		if after {
			aligned = aligned.AddDate(0, int(amount), 0)
		}
		return aligned.UnixMilli(), nil
	}

	duration, err := ParseTimeframe(timeframe)
	if err != nil {
		return 0, err
	}

	offset := int64(0)
	if unit == "w" {
		offset = weekEpochOffset
	}

	aligned := (ts-offset)/duration*duration + offset
	if after {
		aligned += duration
	}
	return aligned, nil
}
