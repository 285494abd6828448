package model

// Timeframe 时间框架类型
type Timeframe string

const (
	// Timeframe1m 1分钟
	Timeframe1m Timeframe = "1m"
	// Timeframe5m 5分钟
	Timeframe5m Timeframe = "5m"
	// Timeframe15m 15分钟
	Timeframe15m Timeframe = "15m"
	// Timeframe30m 30分钟
	Timeframe30m Timeframe = "30m"
	// Timeframe1h 1小时
	Timeframe1h Timeframe = "1h"
	// Timeframe4h 4小时
	Timeframe4h Timeframe = "4h"
	// Timeframe1d 1天
	Timeframe1d Timeframe = "1d"
	// Timeframe1w 1周
	Timeframe1w Timeframe = "1w"
	// Timeframe1M 1月
	Timeframe1M Timeframe = "1M"
)

// ToCoindax 转换为 Coindax 格式的 timeframe
// Coindax kline 接口使用标准格式，直接返回
func (t Timeframe) ToCoindax() string {
	return string(t)
}
