package model

import (
	"github.com/lemconn/cdxlink/types"
	"github.com/shopspring/decimal"
)

// Trade 成交记录
type Trade struct {
	// ID 成交ID
	ID string `json:"id"`
	// OrderID 关联订单ID
	OrderID string `json:"order_id,omitempty"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Side 方向
	Side OrderSide `json:"side"`
	// Price 成交价格
	Price decimal.Decimal `json:"price"`
	// Amount 成交数量
	Amount decimal.Decimal `json:"amount"`
	// Cost 成交金额
	Cost decimal.Decimal `json:"cost"`
	// Fee 手续费
	Fee *Fee `json:"fee,omitempty"`
	// Timestamp 时间戳
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// Trades 成交记录数组
type Trades []*Trade
