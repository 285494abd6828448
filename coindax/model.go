package coindax

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/types"
)

// apiResponse Coindax 统一响应信封
// 成功: { "data": <payload>, "message": "success" }
// 失败: { "errorCode": "...", "message": "..." }
type apiResponse struct {
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"errorCode"`
}

// rawPair GET market/pairs 的单个交易对
type rawPair struct {
	Symbol          string          `json:"symbol"`
	Base            string          `json:"base"`
	Quote           string          `json:"quote"`
	BaseID          string          `json:"baseId"`
	QuoteID         string          `json:"quoteId"`
	Active          *bool           `json:"active"`
	AmountPrecision types.ExDecimal `json:"amountPrecision"`
	PricePrecision  types.ExDecimal `json:"pricePrecision"`
	CostPrecision   types.ExDecimal `json:"costPrecision"`
	TakerFeeRate    types.ExDecimal `json:"takerFeeRate"`
	MakerFeeRate    types.ExDecimal `json:"makerFeeRate"`
	MinAmount       types.ExDecimal `json:"minAmount"`
	MaxAmount       types.ExDecimal `json:"maxAmount"`
	MinPrice        types.ExDecimal `json:"minPrice"`
	MaxPrice        types.ExDecimal `json:"maxPrice"`
	MinCost         types.ExDecimal `json:"minCost"`
}

// rawTicker 行情接口的单个条目
type rawTicker struct {
	Pair       string            `json:"pair"`
	Timestamp  types.ExTimestamp `json:"timestamp"`
	High       types.ExDecimal   `json:"high"`
	Low        types.ExDecimal   `json:"low"`
	Bid        types.ExDecimal   `json:"bid"`
	Ask        types.ExDecimal   `json:"ask"`
	Last       types.ExDecimal   `json:"last"`
	Change     types.ExDecimal   `json:"change"`
	BaseVolume types.ExDecimal   `json:"baseVolume"`
}

// rawOrderBook POST order/book 的响应
// 每档为定长二元组 [price, amount]
type rawOrderBook struct {
	Timestamp types.ExTimestamp   `json:"timestamp"`
	Bids      [][]types.ExDecimal `json:"bids"`
	Asks      [][]types.ExDecimal `json:"asks"`
}

// rawKline POST market/kline 的单根K线
type rawKline struct {
	Time   types.ExTimestamp `json:"time"`
	Open   types.ExDecimal   `json:"open"`
	High   types.ExDecimal   `json:"high"`
	Low    types.ExDecimal   `json:"low"`
	Close  types.ExDecimal   `json:"close"`
	Volume types.ExDecimal   `json:"volume"`
}

// tradeRecord 成交记录的定长四元组 [price, amount, side, timestamp]
// 字段按固定下标读取，在反序列化边界校验一次，之后只经具名访问器使用
type tradeRecord struct {
	price     types.ExDecimal
	amount    types.ExDecimal
	side      string
	timestamp types.ExTimestamp
	raw       json.RawMessage
}

// UnmarshalJSON 按固定下标解码四元组，长度不符即失败
func (r *tradeRecord) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("trade record: %w", err)
	}
	r.raw = append(json.RawMessage(nil), data...)
	if len(fields) != 4 {
		return fmt.Errorf("trade record: expected 4 fields, got %d", len(fields))
	}
	if err := json.Unmarshal(fields[0], &r.price); err != nil {
		return fmt.Errorf("trade record price: %w", err)
	}
	if err := json.Unmarshal(fields[1], &r.amount); err != nil {
		return fmt.Errorf("trade record amount: %w", err)
	}
	if err := json.Unmarshal(fields[2], &r.side); err != nil {
		return fmt.Errorf("trade record side: %w", err)
	}
	if err := json.Unmarshal(fields[3], &r.timestamp); err != nil {
		return fmt.Errorf("trade record timestamp: %w", err)
	}
	return nil
}

// Price 成交价格
func (r *tradeRecord) Price() types.ExDecimal { return r.price }

// Amount 成交数量
func (r *tradeRecord) Amount() types.ExDecimal { return r.amount }

// Timestamp 成交时间
func (r *tradeRecord) Timestamp() types.ExTimestamp { return r.timestamp }

// Raw 原始四元组报文
func (r *tradeRecord) Raw() json.RawMessage { return r.raw }

// Side 成交方向，交易所上报大写 "BUY"/"SELL"，其余值视为格式错误
func (r *tradeRecord) Side() (model.OrderSide, error) {
	switch r.side {
	case "BUY":
		return model.OrderSideBuy, nil
	case "SELL":
		return model.OrderSideSell, nil
	default:
		return "", fmt.Errorf("unrecognized trade side %q", r.side)
	}
}

// rawOrder 订单接口的单个订单
// Amount 为交易所上报的未成交数量，CancelledQuantity 为单独上报的已取消数量
type rawOrder struct {
	ID                string            `json:"id"`
	ClientOrderID     string            `json:"clientOrderId"`
	Pair              string            `json:"pair"`
	Type              string            `json:"type"`
	Side              string            `json:"side"`
	Status            string            `json:"status"`
	Price             types.ExDecimal   `json:"price"`
	Amount            types.ExDecimal   `json:"amount"`
	Filled            types.ExDecimal   `json:"filled"`
	CancelledQuantity types.ExDecimal   `json:"cancelled_quantity"`
	AvgPrice          types.ExDecimal   `json:"avgPrice"`
	Time              types.ExTimestamp `json:"time"`
}

// rawBalance GET balances 的单个币种余额
type rawBalance struct {
	Currency  string          `json:"currency"`
	Total     types.ExDecimal `json:"total"`
	Available types.ExDecimal `json:"available"`
	InOrder   types.ExDecimal `json:"inOrder"`
}

// rawTransaction 充值/提现记录
type rawTransaction struct {
	ID       string            `json:"id"`
	Currency string            `json:"currency"`
	Amount   types.ExDecimal   `json:"amount"`
	Address  string            `json:"address"`
	Tag      string            `json:"tag"`
	Status   string            `json:"status"`
	TxID     string            `json:"txid"`
	Time     types.ExTimestamp `json:"time"`
	Fee      types.ExDecimal   `json:"fee"`
}

// rawCurrencyPlatform 币种的单个提现平台（链）
type rawCurrencyPlatform struct {
	Platform            string          `json:"platform"`
	Priority            types.ExDecimal `json:"priority"`
	WithdrawalFee       types.ExDecimal `json:"withdrawalFee"`
	MinWithdrawal       types.ExDecimal `json:"minWithdrawal"`
	MaxWithdrawal       types.ExDecimal `json:"maxWithdrawal"`
	DepositSuspended    bool            `json:"depositSuspended"`
	WithdrawalSuspended bool            `json:"withdrawalSuspended"`
}

// rawCurrency GET currency 的单个币种
type rawCurrency struct {
	Currency  string                `json:"currency"`
	Name      string                `json:"name"`
	Precision types.ExDecimal       `json:"precision"`
	Platforms []rawCurrencyPlatform `json:"platforms"`
}
