package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode 精度舍入模式
type RoundingMode int

const (
	// RoundingModeRound 四舍五入
	RoundingModeRound RoundingMode = iota
	// RoundingModeTruncate 截断（向零舍入），下单数量和成本必须用该模式，
	// 保证精度换算后的数值不会大于原始数值
	RoundingModeTruncate
)

// DecimalToPrecision 按小数位数舍入
func DecimalToPrecision(value decimal.Decimal, places int, mode RoundingMode) decimal.Decimal {
	if places < 0 {
		places = 0
	}
	switch mode {
	case RoundingModeTruncate:
		return value.Truncate(int32(places))
	default:
		return value.Round(int32(places))
	}
}

// PrecisionFromTickSize 从 tick size 字符串推导小数位数 ("0.010" -> 2)
func PrecisionFromTickSize(tickSize string) int {
	parts := strings.Split(tickSize, ".")
	if len(parts) < 2 {
		return 0
	}
	return len(strings.TrimRight(parts[1], "0"))
}
