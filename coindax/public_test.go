package coindax

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/types"
)

func TestParseTicker_DerivesOpenAndPercentage(t *testing.T) {
	raw := `{
		"pair": "BTC_USDT",
		"timestamp": 1700000000000,
		"high": "110.5",
		"low": "95",
		"bid": "109.9",
		"ask": "110.1",
		"last": "110",
		"change": "10",
		"baseVolume": "1234.5"
	}`

	ticker, err := parseTicker(json.RawMessage(raw), "BTC/USDT")
	require.NoError(t, err)

	require.Equal(t, "BTC/USDT", ticker.Symbol)
	require.Equal(t, int64(1700000000000), ticker.Timestamp.UnixMilli())
	require.Equal(t, "110", ticker.Last.String())
	require.Equal(t, "110", ticker.Close.String())

	// open = last - change, percentage = change / open * 100
	require.True(t, ticker.Open.Present())
	require.Equal(t, "100", ticker.Open.String())
	require.True(t, ticker.Percentage.Present())
	require.Equal(t, "10", ticker.Percentage.String())

	// 计价货币成交额沿用 baseVolume
	require.Equal(t, ticker.BaseVolume.String(), ticker.QuoteVolume.String())
}

func TestParseTicker_ZeroOpen(t *testing.T) {
	// last == change 时 open 为零，涨跌幅取 0 而不是除零
	raw := `{"pair":"NEW_USDT","last":"10","change":"10"}`

	ticker, err := parseTicker(json.RawMessage(raw), "NEW/USDT")
	require.NoError(t, err)
	require.True(t, ticker.Open.Present())
	require.True(t, ticker.Open.IsZero())
	require.True(t, ticker.Percentage.Present())
	require.True(t, ticker.Percentage.IsZero())
}

func TestParseTicker_MissingFieldsStayAbsent(t *testing.T) {
	raw := `{"pair":"BTC_USDT","last":"110"}`

	ticker, err := parseTicker(json.RawMessage(raw), "BTC/USDT")
	require.NoError(t, err)

	// change 缺失时不推导 open，缺失字段不归一为 0
	require.False(t, ticker.Open.Present())
	require.False(t, ticker.Percentage.Present())
	require.False(t, ticker.High.Present())
	require.False(t, ticker.Bid.Present())
}

func TestParseBookSide(t *testing.T) {
	level := func(price, amount string) []types.ExDecimal {
		p, err := types.ExDecimalFromString(price)
		require.NoError(t, err)
		a, err := types.ExDecimalFromString(amount)
		require.NoError(t, err)
		return []types.ExDecimal{p, a}
	}

	entries, err := parseBookSide([][]types.ExDecimal{
		level("100.5", "2"),
		level("100.4", "1.5"),
	}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "100.5", entries[0].Price.String())
	require.Equal(t, "2", entries[0].Amount.String())

	// 档位必须是 [price, amount] 二元组
	_, err = parseBookSide([][]types.ExDecimal{level("100.5", "2")[:1]}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, exchange.ErrBadResponse), "got %v", err)
}

func TestTradeRecord_Unmarshal(t *testing.T) {
	var record tradeRecord
	err := json.Unmarshal([]byte(`["100.5","0.25","BUY",1700000000000]`), &record)
	require.NoError(t, err)

	require.Equal(t, "100.5", record.Price().String())
	require.Equal(t, "0.25", record.Amount().String())
	require.Equal(t, int64(1700000000000), record.Timestamp().UnixMilli())

	side, err := record.Side()
	require.NoError(t, err)
	require.Equal(t, model.OrderSideBuy, side)
}

func TestTradeRecord_WrongArity(t *testing.T) {
	var record tradeRecord
	err := json.Unmarshal([]byte(`["100.5","0.25","BUY"]`), &record)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`["100.5","0.25","BUY",1700000000000,"extra"]`), &record)
	require.Error(t, err)
}

func TestTradeRecord_UnrecognizedSide(t *testing.T) {
	var record tradeRecord
	err := json.Unmarshal([]byte(`["100.5","0.25","HOLD",1700000000000]`), &record)
	require.NoError(t, err)

	_, err = record.Side()
	require.Error(t, err)

	// 未识别的方向在解析成交时归入响应格式错误
	_, err = parseTrade(&record, "BTC/USDT")
	require.Error(t, err)
	require.True(t, errors.Is(err, exchange.ErrBadResponse), "got %v", err)
}

func TestParseTrade_Cost(t *testing.T) {
	var record tradeRecord
	err := json.Unmarshal([]byte(`["100.5","0.25","SELL",1700000000000]`), &record)
	require.NoError(t, err)

	trade, err := parseTrade(&record, "BTC/USDT")
	require.NoError(t, err)
	require.Equal(t, model.OrderSideSell, trade.Side)
	require.Equal(t, "25.125", trade.Cost.String())

	// 原始四元组保留在 Info 中
	raw, ok := trade.Info["raw"].(json.RawMessage)
	require.True(t, ok)
	require.JSONEq(t, `["100.5","0.25","SELL",1700000000000]`, string(raw))
}
