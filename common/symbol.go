package common

import (
	"fmt"
	"strings"
)

// NormalizeSymbol 标准化交易对格式为 BASE/QUOTE (如 BTC/USDT)
func NormalizeSymbol(base, quote string) string {
	return strings.ToUpper(base) + "/" + strings.ToUpper(quote)
}

// ParseSymbol 解析标准化交易对 (BTC/USDT -> base, quote)
func ParseSymbol(symbol string) (base, quote string, err error) {
	parts := strings.Split(symbol, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid symbol format: %s, expected BASE/QUOTE", symbol)
	}
	return strings.ToUpper(parts[0]), strings.ToUpper(parts[1]), nil
}

// ToCoindaxSymbol 转换为 Coindax 格式 (BTC/USDT -> BTC_USDT)
func ToCoindaxSymbol(symbol string) (string, error) {
	base, quote, err := ParseSymbol(symbol)
	if err != nil {
		return "", err
	}
	return base + "_" + quote, nil
}

// FromCoindaxSymbol 从 Coindax 格式转换 (BTC_USDT -> BTC/USDT)
func FromCoindaxSymbol(symbol string) string {
	parts := strings.Split(symbol, "_")
	if len(parts) == 2 {
		return NormalizeSymbol(parts[0], parts[1])
	}
	return symbol
}
