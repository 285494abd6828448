package coindax

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/lemconn/cdxlink/exchange"
)

// errorTable 错误码 -> 错误类别的固定映射表
// 有序切片而非 map，保证子串匹配的顺序稳定
var errorTable = []struct {
	code string
	kind exchange.ErrorKind
}{
	{"AUTHENTICATION_FAILED", exchange.KindAuthentication},
	{"INVALID_SIGNATURE", exchange.KindAuthentication},
	{"INVALID_ACCESS_KEY", exchange.KindAuthentication},
	{"INVALID_PARAMETER", exchange.KindInvalidRequest},
	{"OUT_OF_RANGE", exchange.KindInvalidRequest},
	{"MARKET_CLOSED", exchange.KindServiceUnavailable},
	{"TRADING_SUSPENDED", exchange.KindServiceUnavailable},
	{"NOT_ENOUGH_BALANCE", exchange.KindInsufficientFunds},
	{"UNSUPPORTED_ORDER_COMBINATION", exchange.KindUnsupportedCombination},
	{"ORDER_NOT_FOUND", exchange.KindInvalidOrder},
	{"TOO_MANY_REQUESTS", exchange.KindRateLimit},
	{"SYMBOL_NOT_FOUND", exchange.KindUnknownSymbol},
	{"CURRENCY_NOT_FOUND", exchange.KindUnknownCurrency},
	{"MAX_OPEN_ORDERS", exchange.KindTooManyOpenOrders},
	{"ADDRESS_ALREADY_EXISTS", exchange.KindDuplicateAddress},
}

// classifyError 对响应信封分类
//
// 两级匹配：先用 message 字段在映射表中精确匹配，
// 再用 errorCode 字段做子串匹配；都不命中但存在错误码时归入兜底的
// KindExchange，携带原始响应内容；不存在错误指示则返回 nil
func classifyError(resp *apiResponse, body []byte) error {
	if resp.ErrorCode == "" {
		return nil
	}

	for _, entry := range errorTable {
		if resp.Message == entry.code {
			return exchange.NewAPIError(entry.kind, resp.ErrorCode, resp.Message, body)
		}
	}

	for _, entry := range errorTable {
		if strings.Contains(resp.ErrorCode, entry.code) {
			return exchange.NewAPIError(entry.kind, resp.ErrorCode, resp.Message, body)
		}
	}

	return exchange.NewAPIError(exchange.KindExchange, resp.ErrorCode, resp.Message, body)
}

// decodeResponse 解析响应信封并分类错误
// 信封解析失败归入 KindBadResponse，与交易所上报的业务错误区分
func decodeResponse(body []byte) (json.RawMessage, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode response envelope: "+err.Error(), body)
	}
	if err := classifyError(&resp, body); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
