package model

import "github.com/lemconn/cdxlink/types"

// Ticker 行情信息
type Ticker struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Timestamp 时间戳
	Timestamp types.ExTimestamp `json:"timestamp"`
	// High 24小时最高价
	High types.ExDecimal `json:"high"`
	// Low 24小时最低价
	Low types.ExDecimal `json:"low"`
	// Bid 买一价
	Bid types.ExDecimal `json:"bid"`
	// Ask 卖一价
	Ask types.ExDecimal `json:"ask"`
	// Open 开盘价（由 Close 和 Change 推导）
	Open types.ExDecimal `json:"open"`
	// Close 收盘价（等于 Last）
	Close types.ExDecimal `json:"close"`
	// Last 最新价
	Last types.ExDecimal `json:"last"`
	// Change 涨跌额
	Change types.ExDecimal `json:"change"`
	// Percentage 涨跌幅（百分比）
	Percentage types.ExDecimal `json:"percentage"`
	// BaseVolume 24小时成交量（基础货币）
	BaseVolume types.ExDecimal `json:"base_volume"`
	// QuoteVolume 24小时成交额（计价货币）
	QuoteVolume types.ExDecimal `json:"quote_volume"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// Tickers 行情信息数组
type Tickers []*Ticker
