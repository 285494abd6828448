package coindax

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/option"
)

const pairsEnvelope = `{
	"data": [
		{"symbol":"BTC_USDT","base":"BTC","quote":"USDT","amountPrecision":2,"pricePrecision":1,"costPrecision":2}
	],
	"message": "success"
}`

func TestCreateOrder_PrecisionAndSigning(t *testing.T) {
	var createBody map[string]string
	var createHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/market/pairs":
			_, _ = w.Write([]byte(pairsEnvelope))
		case "/api/v1/create":
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &createBody))
			createHeaders = r.Header.Clone()

			// 服务端用同一密钥重算签名
			signer := NewSigner("test-key", "test-secret")
			require.Equal(t, signer.Signature(http.MethodPost, "create", string(body)), r.Header.Get(headerAccessSign))

			_, _ = w.Write([]byte(`{
				"data": {"id":"o-1","pair":"BTC_USDT","type":"limit","side":"buy","status":"open","price":"10.1","amount":"0.12","filled":"0"},
				"message": "success"
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ex, err := NewCoindax("test-key", "test-secret", map[string]interface{}{"baseURL": server.URL})
	require.NoError(t, err)

	order, err := ex.CreateOrder(context.Background(), "BTC/USDT", model.OrderTypeLimit, model.OrderSideBuy, "0.129",
		option.WithPrice("10.06"),
	)
	require.NoError(t, err)
	require.Equal(t, "o-1", order.ID)
	require.Equal(t, model.OrderStatusOpen, order.Status)

	// 数量按市场精度截断，价格四舍五入，成本截断后随单提交
	require.Equal(t, "0.12", createBody["amount"])
	require.Equal(t, "10.1", createBody["price"])
	require.Equal(t, "1.21", createBody["cost"])
	require.Equal(t, "BTC_USDT", createBody["pair"])
	require.Equal(t, "LIMIT", createBody["type"])
	require.Equal(t, "BUY", createBody["side"])

	// 未指定时自动生成客户端订单ID
	require.True(t, strings.HasPrefix(createBody["client_order_id"], "cdxlink-coindax-"), createBody["client_order_id"])

	require.Equal(t, "test-key", createHeaders.Get(headerAccessKey))
	require.NotEmpty(t, createHeaders.Get(headerAccessTimestamp))
}

func TestCreateOrder_PrecisionAbsent(t *testing.T) {
	// 交易对没有上报精度字段时数量和价格原样提交，
	// 缺失的精度不按 0 位小数截断
	var createBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/market/pairs":
			_, _ = w.Write([]byte(`{
				"data": [{"symbol":"BTC_USDT","base":"BTC","quote":"USDT"}],
				"message": "success"
			}`))
		case "/api/v1/create":
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &createBody))
			_, _ = w.Write([]byte(`{
				"data": {"id":"o-2","pair":"BTC_USDT","type":"limit","side":"buy","status":"open","price":"10.06","amount":"0.129","filled":"0"},
				"message": "success"
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ex, err := NewCoindax("test-key", "test-secret", map[string]interface{}{"baseURL": server.URL})
	require.NoError(t, err)

	_, err = ex.CreateOrder(context.Background(), "BTC/USDT", model.OrderTypeLimit, model.OrderSideBuy, "0.129",
		option.WithPrice("10.06"),
	)
	require.NoError(t, err)

	require.Equal(t, "0.129", createBody["amount"])
	require.Equal(t, "10.06", createBody["price"])
	require.Equal(t, "1.29774", createBody["cost"])
}

func TestCreateOrder_LimitRequiresPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/v1/market/pairs" {
			_, _ = w.Write([]byte(pairsEnvelope))
			return
		}
		t.Errorf("unexpected request: %s", r.URL.Path)
	}))
	defer server.Close()

	ex, err := NewCoindax("test-key", "test-secret", map[string]interface{}{"baseURL": server.URL})
	require.NoError(t, err)
	require.NoError(t, ex.LoadMarkets(context.Background(), false))

	_, err = ex.CreateOrder(context.Background(), "BTC/USDT", model.OrderTypeLimit, model.OrderSideBuy, "1")
	require.Error(t, err)
}

func TestFetchTicker_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/market/pairs":
			_, _ = w.Write([]byte(pairsEnvelope))
		case "/api/v1/market/ticker":
			body, _ := io.ReadAll(r.Body)
			var params map[string]string
			require.NoError(t, json.Unmarshal(body, &params))
			// 发往交易所的是原始ID而不是统一符号
			require.Equal(t, "BTC_USDT", params["pair"])
			_, _ = w.Write([]byte(`{
				"data": {"pair":"BTC_USDT","timestamp":1700000000000,"last":"110","change":"10","baseVolume":"3"},
				"message": "success"
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ex, err := NewCoindax("", "", map[string]interface{}{"baseURL": server.URL})
	require.NoError(t, err)

	ticker, err := ex.FetchTicker(context.Background(), "BTC/USDT")
	require.NoError(t, err)
	require.Equal(t, "BTC/USDT", ticker.Symbol)
	require.Equal(t, "110", ticker.Last.String())
	require.Equal(t, "100", ticker.Open.String())
}

func TestRequest_ClassifiesErrorEnvelopeOn4xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/v1/market/pairs" {
			_, _ = w.Write([]byte(pairsEnvelope))
			return
		}
		// 交易所在 4xx 响应中携带错误信封
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorCode":"NOT_ENOUGH_BALANCE","message":"insufficient balance"}`))
	}))
	defer server.Close()

	ex, err := NewCoindax("test-key", "test-secret", map[string]interface{}{"baseURL": server.URL})
	require.NoError(t, err)

	_, err = ex.CreateOrder(context.Background(), "BTC/USDT", model.OrderTypeMarket, model.OrderSideSell, "1")
	require.Error(t, err)
	require.True(t, errors.Is(err, exchange.ErrInsufficientFunds), "got %v", err)
}
