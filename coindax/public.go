package coindax

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/option"
	"github.com/lemconn/cdxlink/types"
)

// FetchTicker 获取单个行情
func (c *Coindax) FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error) {
	market, err := c.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	params := types.NewExValues()
	params.SetQuery("pair", market.ID)

	data, err := c.publicPost(ctx, "market/ticker", params)
	if err != nil {
		return nil, fmt.Errorf("fetch ticker: %w", err)
	}

	return parseTicker(data, market.Symbol)
}

// FetchTickers 批量获取行情
// 市场映射中不存在的交易对跳过
func (c *Coindax) FetchTickers(ctx context.Context) (map[string]*model.Ticker, error) {
	if err := c.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	data, err := c.publicGet(ctx, "market/tickers", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode tickers: "+err.Error(), data)
	}

	tickers := make(map[string]*model.Ticker)
	for _, item := range items {
		var head struct {
			Pair string `json:"pair"`
		}
		if err := json.Unmarshal(item, &head); err != nil {
			return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode ticker: "+err.Error(), item)
		}
		market, err := c.GetMarket(head.Pair)
		if err != nil {
			continue
		}
		ticker, err := parseTicker(item, market.Symbol)
		if err != nil {
			return nil, err
		}
		tickers[market.Symbol] = ticker
	}
	return tickers, nil
}

// parseTicker 解析单个行情
//
// 交易所只上报 last 和 change，开盘价和涨跌幅由两者推导：
// open = close - change；open 非零时 percentage = change/open*100，为零时取 0。
// 缺失的数值字段保持缺失标记，不归一为 0
func parseTicker(data json.RawMessage, symbol string) (*model.Ticker, error) {
	var raw rawTicker
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode ticker: "+err.Error(), data)
	}

	var info map[string]interface{}
	_ = json.Unmarshal(data, &info)

	ticker := &model.Ticker{
		Symbol:     symbol,
		Timestamp:  raw.Timestamp,
		High:       raw.High,
		Low:        raw.Low,
		Bid:        raw.Bid,
		Ask:        raw.Ask,
		Close:      raw.Last,
		Last:       raw.Last,
		Change:     raw.Change,
		BaseVolume: raw.BaseVolume,
		// 交易所不单独上报计价货币成交额，上游映射沿用 baseVolume，
		// 此处保持同样行为，待交易所确认后再修正
		QuoteVolume: raw.BaseVolume,
		Info:        info,
	}

	if raw.Last.Present() && raw.Change.Present() {
		open := raw.Last.Sub(raw.Change.Decimal)
		ticker.Open = types.NewExDecimal(open)
		if open.IsZero() {
			ticker.Percentage = types.NewExDecimal(decimal.Zero)
		} else {
			ticker.Percentage = types.NewExDecimal(raw.Change.Div(open).Mul(decimal.NewFromInt(100)))
		}
	}

	return ticker, nil
}

// FetchOrderBook 获取订单簿
func (c *Coindax) FetchOrderBook(ctx context.Context, symbol string, opts ...option.CallOption) (*model.OrderBook, error) {
	market, err := c.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	callOpts := option.NewCallOptions(opts...)
	params := types.NewExValues()
	params.SetQuery("pair", market.ID)
	if callOpts.Limit != nil {
		params.SetQuery("limit", *callOpts.Limit)
	}

	data, err := c.publicPost(ctx, "order/book", params)
	if err != nil {
		return nil, fmt.Errorf("fetch order book: %w", err)
	}

	var raw rawOrderBook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode order book: "+err.Error(), data)
	}

	book := &model.OrderBook{
		Symbol:    market.Symbol,
		Timestamp: raw.Timestamp,
	}
	if book.Bids, err = parseBookSide(raw.Bids, data); err != nil {
		return nil, err
	}
	if book.Asks, err = parseBookSide(raw.Asks, data); err != nil {
		return nil, err
	}
	return book, nil
}

// parseBookSide 解析订单簿一侧，每档为定长二元组 [price, amount]
func parseBookSide(side [][]types.ExDecimal, body []byte) ([]model.OrderBookEntry, error) {
	entries := make([]model.OrderBookEntry, 0, len(side))
	for _, level := range side {
		if len(level) != 2 {
			return nil, exchange.NewAPIError(exchange.KindBadResponse, "",
				fmt.Sprintf("order book level: expected 2 fields, got %d", len(level)), body)
		}
		entries = append(entries, model.OrderBookEntry{
			Price:  level[0].Decimal,
			Amount: level[1].Decimal,
		})
	}
	return entries, nil
}
