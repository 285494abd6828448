package model

import (
	"github.com/lemconn/cdxlink/types"
)

// Currency 币种信息
type Currency struct {
	// ID 交易所原始币种ID
	ID string `json:"id"`
	// Code 币种代码（统一大写），如 "USDT"
	Code string `json:"code"`
	// Name 币种名称
	Name string `json:"name,omitempty"`
	// Active 是否可用（充值和提现同时暂停时为 false）
	Active bool `json:"active"`
	// Fee 提现手续费（选定平台）
	Fee types.ExDecimal `json:"fee"`
	// Precision 精度（小数位数），nil 表示交易所未上报
	Precision *int `json:"precision"`
	// Limits 提现限制
	Limits struct {
		Withdraw struct {
			Min types.ExDecimal `json:"min"`
			Max types.ExDecimal `json:"max"`
		} `json:"withdraw"`
	} `json:"limits"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}

// Currencies 币种信息映射（代码 -> 币种）
type Currencies map[string]*Currency
