package model

import "github.com/lemconn/cdxlink/types"

// OHLCV K线数据，固定六元组 [timestamp, open, high, low, close, volume]
type OHLCV struct {
	// Timestamp 周期起始时间戳（已按周期边界对齐）
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Open 开盘价
	Open types.ExDecimal `json:"open"`
	// High 最高价
	High types.ExDecimal `json:"high"`
	// Low 最低价
	Low types.ExDecimal `json:"low"`
	// Close 收盘价
	Close types.ExDecimal `json:"close"`
	// Volume 成交量
	Volume types.ExDecimal `json:"volume"`
}

// OHLCVs K线数据数组
type OHLCVs []*OHLCV
