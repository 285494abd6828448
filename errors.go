package cdxlink

import (
	"errors"

	"github.com/lemconn/cdxlink/exchange"
)

var (
	// ErrExchangeNotSupported 不支持的交易所
	ErrExchangeNotSupported = errors.New("exchange not supported")
)

// 常用错误类别的哨兵，转发自 exchange 包，与 errors.Is 搭配使用
var (
	// ErrAuthentication 认证失败
	ErrAuthentication = exchange.ErrAuthentication
	// ErrInsufficientFunds 余额不足
	ErrInsufficientFunds = exchange.ErrInsufficientFunds
	// ErrRateLimit 请求频率超限
	ErrRateLimit = exchange.ErrRateLimit
	// ErrUnknownSymbol 未知交易对
	ErrUnknownSymbol = exchange.ErrUnknownSymbol
	// ErrInvalidOrder 订单不存在
	ErrInvalidOrder = exchange.ErrInvalidOrder
)
