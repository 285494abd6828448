package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExDecimal 带缺失标记的 decimal.Decimal 类型
// 交易所的数值字段经常缺失或为空字符串，缺失和真实的 0 必须区分开，
// 否则会把"没有数据"误报成"价格为 0"
type ExDecimal struct {
	decimal.Decimal
	present bool
}

// NewExDecimal 从 decimal.Decimal 构造一个有值的 ExDecimal
func NewExDecimal(d decimal.Decimal) ExDecimal {
	return ExDecimal{Decimal: d, present: true}
}

// ExDecimalFromString 从字符串构造 ExDecimal
// 空字符串返回缺失值，非法数字返回错误
func ExDecimalFromString(s string) (ExDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ExDecimal{}, err
	}
	return ExDecimal{Decimal: d, present: true}, nil
}

// ExDecimalFromFloat 从 float64 构造一个有值的 ExDecimal
func ExDecimalFromFloat(f float64) ExDecimal {
	return ExDecimal{Decimal: decimal.NewFromFloat(f), present: true}
}

// Present 是否携带真实数值
// false 表示字段在原始报文中缺失或为空
func (d ExDecimal) Present() bool {
	return d.present
}

// UnmarshalJSON 自定义 JSON 反序列化
// ""、null -> 缺失标记；其余按 decimal 解析（兼容字符串和数字）
func (d *ExDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || s == "null" {
		d.Decimal = decimal.Decimal{}
		d.present = false
		return nil
	}
	if err := d.Decimal.UnmarshalJSON(data); err != nil {
		return err
	}
	d.present = true
	return nil
}

// MarshalJSON 自定义 JSON 序列化，缺失值序列化为 null
func (d ExDecimal) MarshalJSON() ([]byte, error) {
	if !d.present {
		return []byte("null"), nil
	}
	return d.Decimal.MarshalJSON()
}
