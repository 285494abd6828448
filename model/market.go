package model

import "github.com/shopspring/decimal"

// Market 市场信息
type Market struct {
	// ID 交易所原始市场ID，如 "BTC_USDT"
	ID string `json:"id"`

	// Symbol 交易对符号（统一格式），恒等于 Base + "/" + Quote
	Symbol string `json:"symbol"`

	// Base 基础货币，如 "BTC"
	Base string `json:"base"`

	// Quote 计价货币，如 "USDT"
	Quote string `json:"quote"`

	// BaseID 交易所原始基础货币ID
	BaseID string `json:"base_id,omitempty"`

	// QuoteID 交易所原始计价货币ID
	QuoteID string `json:"quote_id,omitempty"`

	// Active 是否可交易
	Active bool `json:"active"`

	// Taker taker 手续费率（小数，非百分比）
	Taker decimal.Decimal `json:"taker"`

	// Maker maker 手续费率（小数，非百分比）
	Maker decimal.Decimal `json:"maker"`

	// Precision 精度信息（小数位数）
	// nil 表示交易所未上报该精度，下单时不做精度换算，
	// 缺失不等于 0 位小数
	Precision struct {
		// Amount 数量精度
		Amount *int `json:"amount"`
		// Price 价格精度
		Price *int `json:"price"`
		// Cost 成本精度
		Cost *int `json:"cost"`
	} `json:"precision"`

	// Limits 限制信息
	Limits struct {
		// Amount 数量限制
		Amount struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"amount"`
		// Price 价格限制
		Price struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"price"`
		// Cost 成本限制
		Cost struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"cost"`
	} `json:"limits"`

	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// Markets 市场信息数组
type Markets []*Market
