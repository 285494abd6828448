package model

import (
	"github.com/lemconn/cdxlink/types"
)

// TransactionType 资金流水类型
type TransactionType string

const (
	// TransactionTypeDeposit 充值
	TransactionTypeDeposit TransactionType = "deposit"
	// TransactionTypeWithdrawal 提现
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus 资金流水状态
type TransactionStatus string

const (
	// TransactionStatusPending 处理中
	TransactionStatusPending TransactionStatus = "pending"
	// TransactionStatusOK 已完成
	TransactionStatusOK TransactionStatus = "ok"
	// TransactionStatusCanceled 已取消
	TransactionStatusCanceled TransactionStatus = "canceled"
)

// Transaction 资金流水（充值/提现）
type Transaction struct {
	// ID 流水ID
	ID string `json:"id"`
	// Currency 币种
	Currency string `json:"currency"`
	// Amount 金额
	Amount types.ExDecimal `json:"amount"`
	// Address 链上地址
	Address string `json:"address,omitempty"`
	// Tag 地址标签（memo）
	Tag string `json:"tag,omitempty"`
	// Status 状态
	Status TransactionStatus `json:"status"`
	// Type 类型
	Type TransactionType `json:"type"`
	// TxID 链上交易哈希
	TxID string `json:"txid,omitempty"`
	// Timestamp 时间戳
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Fee 手续费，仅在非零时存在
	Fee *Fee `json:"fee,omitempty"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// Transactions 资金流水数组
type Transactions []*Transaction
