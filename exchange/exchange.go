package exchange

import (
	"context"

	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/option"
)

// Exchange 统一交易所接口
type Exchange interface {
	// Name 返回交易所名称
	Name() string

	// ========== 市场数据 ==========

	// LoadMarkets 加载市场信息（优先读缓存）
	LoadMarkets(ctx context.Context, reload bool) error

	// FetchMarkets 获取市场列表
	FetchMarkets(ctx context.Context) (model.Markets, error)

	// GetMarket 获取单个市场信息（支持统一符号和交易所原始ID）
	GetMarket(symbol string) (*model.Market, error)

	// GetMarkets 从内存中获取所有市场信息
	GetMarkets() (model.Markets, error)

	// FetchCurrencies 获取币种列表
	FetchCurrencies(ctx context.Context) (model.Currencies, error)

	// FetchTicker 获取行情（单个）
	FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error)

	// FetchTickers 批量获取行情
	FetchTickers(ctx context.Context) (map[string]*model.Ticker, error)

	// FetchOrderBook 获取订单簿
	FetchOrderBook(ctx context.Context, symbol string, opts ...option.CallOption) (*model.OrderBook, error)

	// FetchOHLCVs 获取K线数据
	FetchOHLCVs(ctx context.Context, symbol string, timeframe string, opts ...option.CallOption) (model.OHLCVs, error)

	// FetchTrades 获取近期成交（公共）
	FetchTrades(ctx context.Context, symbol string, opts ...option.CallOption) (model.Trades, error)

	// ========== 账户信息 ==========

	// FetchBalance 获取余额
	FetchBalance(ctx context.Context) (model.Balances, error)

	// FetchDeposits 获取充值记录
	FetchDeposits(ctx context.Context, currency string, opts ...option.CallOption) (model.Transactions, error)

	// FetchWithdrawals 获取提现记录
	FetchWithdrawals(ctx context.Context, currency string, opts ...option.CallOption) (model.Transactions, error)

	// ========== 订单操作 ==========

	// CreateOrder 创建订单
	CreateOrder(ctx context.Context, symbol string, orderType model.OrderType, side model.OrderSide, amount string, opts ...option.CallOption) (*model.Order, error)

	// CancelOrder 取消订单
	CancelOrder(ctx context.Context, symbol string, orderID string, opts ...option.CallOption) error

	// FetchOpenOrders 获取未成交订单
	FetchOpenOrders(ctx context.Context, symbol string, opts ...option.CallOption) (model.Orders, error)

	// FetchClosedOrders 获取历史订单
	FetchClosedOrders(ctx context.Context, symbol string, opts ...option.CallOption) (model.Orders, error)

	// FetchMyTrades 获取我的成交记录
	FetchMyTrades(ctx context.Context, symbol string, opts ...option.CallOption) (model.Trades, error)
}
