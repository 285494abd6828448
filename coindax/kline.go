package coindax

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/lemconn/cdxlink/common"
	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/option"
	"github.com/lemconn/cdxlink/types"
)

// FetchOHLCVs 获取K线数据
// since 选项对齐到所在周期的起始边界后作为查询起点
func (c *Coindax) FetchOHLCVs(ctx context.Context, symbol string, timeframe string, opts ...option.CallOption) (model.OHLCVs, error) {
	market, err := c.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	callOpts := option.NewCallOptions(opts...)
	params := types.NewExValues()
	params.SetQuery("pair", market.ID)
	params.SetQuery("interval", model.Timeframe(timeframe).ToCoindax())
	if callOpts.Limit != nil {
		params.SetQuery("limit", *callOpts.Limit)
	}
	if callOpts.Since != nil && !callOpts.Since.IsZero() {
		from, err := common.RoundTimeframe(timeframe, callOpts.Since.UnixMilli(), false)
		if err != nil {
			return nil, exchange.NewAPIError(exchange.KindInvalidRequest, "", err.Error(), nil)
		}
		params.SetQuery("from", from)
	}

	data, err := c.publicPost(ctx, "market/kline", params)
	if err != nil {
		return nil, fmt.Errorf("fetch kline: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode kline: "+err.Error(), data)
	}

	ohlcvs := make(model.OHLCVs, 0, len(items))
	for _, item := range items {
		ohlcv, err := parseOHLCV(item, timeframe)
		if err != nil {
			return nil, err
		}
		ohlcvs = append(ohlcvs, ohlcv)
	}
	return ohlcvs, nil
}

// parseOHLCV 解析单根K线，时间戳对齐到周期起始边界
func parseOHLCV(data json.RawMessage, timeframe string) (*model.OHLCV, error) {
	var raw rawKline
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode kline bar: "+err.Error(), data)
	}
	if raw.Time.IsZero() {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "kline bar missing time", data)
	}

	aligned, err := common.RoundTimeframe(timeframe, raw.Time.UnixMilli(), false)
	if err != nil {
		return nil, exchange.NewAPIError(exchange.KindInvalidRequest, "", err.Error(), data)
	}

	return &model.OHLCV{
		Timestamp: types.ExTimestampFromMilli(aligned),
		Open:      raw.Open,
		High:      raw.High,
		Low:       raw.Low,
		Close:     raw.Close,
		Volume:    raw.Volume,
	}, nil
}

// FetchTrades 获取近期成交（公共）
func (c *Coindax) FetchTrades(ctx context.Context, symbol string, opts ...option.CallOption) (model.Trades, error) {
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

	data, err := c.publicPost(ctx, "trade/recent", params)
	if err != nil {
		return nil, fmt.Errorf("fetch trades: %w", err)
	}

	var records []tradeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode trades: "+err.Error(), data)
	}

	trades := make(model.Trades, 0, len(records))
	for i := range records {
		trade, err := parseTrade(&records[i], market.Symbol)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

// parseTrade 解析单条成交记录（定长四元组）
func parseTrade(record *tradeRecord, symbol string) (*model.Trade, error) {
	side, err := record.Side()
	if err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", err.Error(), nil)
	}

	price := record.Price()
	amount := record.Amount()

	return &model.Trade{
		Symbol:    symbol,
		Side:      side,
		Price:     price.Decimal,
		Amount:    amount.Decimal,
		Cost:      price.Mul(amount.Decimal),
		Timestamp: record.Timestamp(),
		// 四元组没有字段名，原始报文整体保留
		Info: map[string]interface{}{"raw": record.Raw()},
	}, nil
}
