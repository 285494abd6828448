package exchange

import (
	"errors"
	"fmt"
)

// ErrorKind 错误类别
// 交易所上报的错误码统一归入固定的错误类别，调用方按类别决定处理策略
// （如 InsufficientFunds 不可重试，RateLimit 需自行退避后重试）
type ErrorKind string

const (
	// KindAuthentication 认证失败（密钥缺失或错误）
	KindAuthentication ErrorKind = "authentication"
	// KindInvalidRequest 请求参数错误
	KindInvalidRequest ErrorKind = "invalid_request"
	// KindServiceUnavailable 市场或交易暂时关闭
	KindServiceUnavailable ErrorKind = "service_unavailable"
	// KindInsufficientFunds 余额不足
	KindInsufficientFunds ErrorKind = "insufficient_funds"
	// KindUnsupportedCombination 不支持的参数组合
	KindUnsupportedCombination ErrorKind = "unsupported_combination"
	// KindInvalidOrder 订单不存在或不属于当前账户
	KindInvalidOrder ErrorKind = "invalid_order"
	// KindRateLimit 请求频率超限
	KindRateLimit ErrorKind = "rate_limit"
	// KindUnknownSymbol 未知交易对
	KindUnknownSymbol ErrorKind = "unknown_symbol"
	// KindUnknownCurrency 未知币种
	KindUnknownCurrency ErrorKind = "unknown_currency"
	// KindTooManyOpenOrders 挂单数量超限
	KindTooManyOpenOrders ErrorKind = "too_many_open_orders"
	// KindDuplicateAddress 重复地址
	KindDuplicateAddress ErrorKind = "duplicate_address"
	// KindExchange 未归类的交易所错误（兜底）
	KindExchange ErrorKind = "exchange"
	// KindBadResponse 响应格式错误（缺字段、数组越界等解析失败）
	// 与交易所上报的业务错误区分开，不允许静默取默认值
	KindBadResponse ErrorKind = "bad_response"
)

// APIError 交易所错误
// Body 保留原始响应内容，便于排查未归类的错误码
type APIError struct {
	// Kind 错误类别
	Kind ErrorKind
	// Code 交易所原始错误码
	Code string
	// Message 交易所原始错误信息
	Message string
	// Body 原始响应内容
	Body []byte
}

// NewAPIError 创建交易所错误
func NewAPIError(kind ErrorKind, code, message string, body []byte) *APIError {
	return &APIError{Kind: kind, Code: code, Message: message, Body: body}
}

// Error 实现 error 接口
func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Code)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Code)
	default:
		return string(e.Kind)
	}
}

// Is 支持 errors.Is 按类别匹配哨兵错误
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// 按类别匹配的哨兵错误，与 errors.Is 搭配使用
var (
	// ErrAuthentication 认证失败
	ErrAuthentication = &APIError{Kind: KindAuthentication}
	// ErrInvalidRequest 请求参数错误
	ErrInvalidRequest = &APIError{Kind: KindInvalidRequest}
	// ErrServiceUnavailable 服务暂不可用
	ErrServiceUnavailable = &APIError{Kind: KindServiceUnavailable}
	// ErrInsufficientFunds 余额不足
	ErrInsufficientFunds = &APIError{Kind: KindInsufficientFunds}
	// ErrUnsupportedCombination 不支持的参数组合
	ErrUnsupportedCombination = &APIError{Kind: KindUnsupportedCombination}
	// ErrInvalidOrder 订单不存在
	ErrInvalidOrder = &APIError{Kind: KindInvalidOrder}
	// ErrRateLimit 请求频率超限
	ErrRateLimit = &APIError{Kind: KindRateLimit}
	// ErrUnknownSymbol 未知交易对
	ErrUnknownSymbol = &APIError{Kind: KindUnknownSymbol}
	// ErrUnknownCurrency 未知币种
	ErrUnknownCurrency = &APIError{Kind: KindUnknownCurrency}
	// ErrTooManyOpenOrders 挂单数量超限
	ErrTooManyOpenOrders = &APIError{Kind: KindTooManyOpenOrders}
	// ErrDuplicateAddress 重复地址
	ErrDuplicateAddress = &APIError{Kind: KindDuplicateAddress}
	// ErrExchange 未归类的交易所错误
	ErrExchange = &APIError{Kind: KindExchange}
	// ErrBadResponse 响应格式错误
	ErrBadResponse = &APIError{Kind: KindBadResponse}
)
