package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDecimalToPrecision(t *testing.T) {
	cases := []struct {
		value  string
		places int
		mode   RoundingMode
		want   string
	}{
		{"0.129", 2, RoundingModeTruncate, "0.12"},
		{"0.129", 2, RoundingModeRound, "0.13"},
		{"0.125", 2, RoundingModeRound, "0.13"},
		{"1.999999", 4, RoundingModeTruncate, "1.9999"},
		{"1.999999", 4, RoundingModeRound, "2"},
		{"5", 2, RoundingModeTruncate, "5"},
		// 截断向零舍入
		{"-0.129", 2, RoundingModeTruncate, "-0.12"},
		// 负精度按 0 处理
		{"1.9", -1, RoundingModeTruncate, "1"},
	}

	for _, tc := range cases {
		value := decimal.RequireFromString(tc.value)
		got := DecimalToPrecision(value, tc.places, tc.mode)
		require.Equal(t, tc.want, got.String(), "%s @ %d", tc.value, tc.places)
	}
}

func TestDecimalToPrecision_TruncateNeverIncreases(t *testing.T) {
	// 截断后的数值不能大于原始数值
	for _, s := range []string{"0.999999", "123.456789", "0.00000001"} {
		value := decimal.RequireFromString(s)
		got := DecimalToPrecision(value, 4, RoundingModeTruncate)
		require.True(t, got.LessThanOrEqual(value), "%s -> %s", s, got)
	}
}

func TestPrecisionFromTickSize(t *testing.T) {
	require.Equal(t, 2, PrecisionFromTickSize("0.010"))
	require.Equal(t, 3, PrecisionFromTickSize("0.001"))
	require.Equal(t, 1, PrecisionFromTickSize("0.100"))
	require.Equal(t, 0, PrecisionFromTickSize("1"))
	require.Equal(t, 0, PrecisionFromTickSize("10"))
}
