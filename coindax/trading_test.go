package coindax

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
)

func TestParseOrder_RemainingIncludesCancelled(t *testing.T) {
	// amount 为未成交数量，cancelled_quantity 单独上报，
	// 统一后 remaining 包含已取消部分
	raw := `{
		"id": "12345",
		"clientOrderId": "cdx-1",
		"pair": "BTC_USDT",
		"type": "limit",
		"side": "buy",
		"status": "partially_filled",
		"price": "10",
		"amount": "2",
		"filled": "3",
		"cancelled_quantity": "1",
		"avgPrice": "9.5",
		"time": 1700000000000
	}`

	order, err := parseOrder(json.RawMessage(raw), "BTC/USDT")
	require.NoError(t, err)

	require.Equal(t, "12345", order.ID)
	require.Equal(t, "cdx-1", order.ClientOrderID)
	require.Equal(t, model.OrderTypeLimit, order.Type)
	require.Equal(t, model.OrderSideBuy, order.Side)
	require.Equal(t, model.OrderStatusOpen, order.Status)

	require.Equal(t, "3", order.Remaining.String())
	// filled + remaining 等于下单时的原始数量
	require.Equal(t, "6", order.Amount.String())
	require.Equal(t, "28.5", order.Cost.String())
	require.Equal(t, "10", order.Price.String())
}

func TestParseOrder_NoCancelledQuantity(t *testing.T) {
	raw := `{"id":"1","pair":"BTC_USDT","type":"limit","side":"sell","status":"open","price":"10","amount":"5","filled":"0"}`

	order, err := parseOrder(json.RawMessage(raw), "BTC/USDT")
	require.NoError(t, err)
	require.Equal(t, "5", order.Remaining.String())
	require.Equal(t, "5", order.Amount.String())
	require.False(t, order.Cost.Present())
}

func TestParseOrder_MarketOrderHasNoPrice(t *testing.T) {
	// 市价单没有委托价格，保持缺失而不是取 0
	raw := `{"id":"2","pair":"BTC_USDT","type":"market","side":"buy","status":"filled","price":"0","amount":"0","filled":"1","avgPrice":"101"}`

	order, err := parseOrder(json.RawMessage(raw), "BTC/USDT")
	require.NoError(t, err)
	require.Equal(t, model.OrderTypeMarket, order.Type)
	require.False(t, order.Price.Present())
	require.Equal(t, "101", order.Cost.String())
}

func TestParseOrder_MissingID(t *testing.T) {
	_, err := parseOrder(json.RawMessage(`{"pair":"BTC_USDT","type":"limit","side":"buy"}`), "BTC/USDT")
	require.Error(t, err)
	require.True(t, errors.Is(err, exchange.ErrBadResponse), "got %v", err)
}

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want model.OrderStatus
	}{
		{"open", model.OrderStatusOpen},
		{"OPEN", model.OrderStatusOpen},
		{"partially_filled", model.OrderStatusOpen},
		{"cancelled", model.OrderStatusCanceled},
		{"canceled", model.OrderStatusCanceled},
		{"filled", model.OrderStatusClosed},
		// 未识别的状态原样透传
		{"rejected", model.OrderStatus("rejected")},
		{"Expired", model.OrderStatus("expired")},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, parseOrderStatus(tc.in), tc.in)
	}
}

func TestParseBalance(t *testing.T) {
	balance, err := parseBalance(json.RawMessage(`{"currency":"btc","total":"10","available":"7","inOrder":"3"}`))
	require.NoError(t, err)
	require.Equal(t, "BTC", balance.Currency)
	require.Equal(t, "7", balance.Free.String())
	require.Equal(t, "3", balance.Used.String())
	require.Equal(t, "10", balance.Total.String())
}

func TestParseBalance_DerivedFields(t *testing.T) {
	// inOrder 缺失时由 total - available 推导
	balance, err := parseBalance(json.RawMessage(`{"currency":"ETH","total":"10","available":"7"}`))
	require.NoError(t, err)
	require.Equal(t, "3", balance.Used.String())

	// total 缺失时由 free + used 推导
	balance, err = parseBalance(json.RawMessage(`{"currency":"ETH","available":"7","inOrder":"3"}`))
	require.NoError(t, err)
	require.Equal(t, "10", balance.Total.String())
}

func TestParseBalance_MissingCurrency(t *testing.T) {
	_, err := parseBalance(json.RawMessage(`{"total":"10"}`))
	require.Error(t, err)
	require.True(t, errors.Is(err, exchange.ErrBadResponse), "got %v", err)
}
