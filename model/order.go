package model

import (
	"github.com/lemconn/cdxlink/types"
	"github.com/shopspring/decimal"
)

// OrderSide 订单方向
type OrderSide string

const (
	// OrderSideBuy 买入
	OrderSideBuy OrderSide = "buy"
	// OrderSideSell 卖出
	OrderSideSell OrderSide = "sell"
)

// OrderType 订单类型
type OrderType string

const (
	// OrderTypeMarket 市价单
	OrderTypeMarket OrderType = "market"
	// OrderTypeLimit 限价单
	OrderTypeLimit OrderType = "limit"
)

// OrderStatus 订单状态
// 未识别的交易所状态原样透传，保持前向兼容
type OrderStatus string

const (
	// OrderStatusOpen 未成交订单
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusClosed 已成交订单
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCanceled 已取消订单
	OrderStatusCanceled OrderStatus = "canceled"
)

// Fee 手续费信息
type Fee struct {
	// Currency 手续费币种
	Currency string `json:"currency"`
	// Cost 手续费金额
	Cost decimal.Decimal `json:"cost"`
	// Rate 手续费率
	Rate decimal.Decimal `json:"rate,omitempty"`
}

// Order 订单信息
type Order struct {
	// ID 订单ID
	ID string `json:"id"`
	// ClientOrderID 客户端订单ID
	ClientOrderID string `json:"client_order_id,omitempty"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Type 订单类型
	Type OrderType `json:"type"`
	// Side 订单方向
	Side OrderSide `json:"side"`
	// Price 订单价格（市价单缺失）
	Price types.ExDecimal `json:"price"`
	// Amount 订单原始数量（含已取消部分）
	Amount types.ExDecimal `json:"amount"`
	// Filled 已成交数量
	Filled types.ExDecimal `json:"filled"`
	// Remaining 未成交数量（含交易所单独上报的已取消数量）
	Remaining types.ExDecimal `json:"remaining"`
	// Average 平均成交价格
	Average types.ExDecimal `json:"average"`
	// Cost 成交金额
	Cost types.ExDecimal `json:"cost"`
	// Status 订单状态
	Status OrderStatus `json:"status"`
	// Fee 手续费
	Fee *Fee `json:"fee,omitempty"`
	// Timestamp 时间戳
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// Orders 订单数组
type Orders []*Order
