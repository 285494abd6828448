package coindax

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/lemconn/cdxlink/common"
	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/option"
	"github.com/lemconn/cdxlink/types"
)

// CreateOrder 创建订单
// 数量按市场精度截断（向零舍入），限价单的成本按成本精度截断后随单提交，
// 保证提交值不会超过精度换算前的原始值
func (c *Coindax) CreateOrder(ctx context.Context, symbol string, orderType model.OrderType, side model.OrderSide, amount string, opts ...option.CallOption) (*model.Order, error) {
	market, err := c.market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	amountDec, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, exchange.NewAPIError(exchange.KindInvalidRequest, "", "invalid amount: "+amount, nil)
	}
	// 交易所未上报精度时不做换算，缺失不等于 0 位小数
	if market.Precision.Amount != nil {
		amountDec = common.DecimalToPrecision(amountDec, *market.Precision.Amount, common.RoundingModeTruncate)
	}

	callOpts := option.NewCallOptions(opts...)

	params := types.NewExValues()
	params.SetQuery("pair", market.ID)
	params.SetQuery("type", strings.ToUpper(string(orderType)))
	params.SetQuery("side", strings.ToUpper(string(side)))
	params.SetQuery("amount", amountDec)

	if orderType == model.OrderTypeLimit {
		if callOpts.Price == nil || *callOpts.Price == "" {
			return nil, exchange.NewAPIError(exchange.KindInvalidRequest, "", "limit order requires price", nil)
		}
		priceDec, err := decimal.NewFromString(*callOpts.Price)
		if err != nil {
			return nil, exchange.NewAPIError(exchange.KindInvalidRequest, "", "invalid price: "+*callOpts.Price, nil)
		}
		if market.Precision.Price != nil {
			priceDec = common.DecimalToPrecision(priceDec, *market.Precision.Price, common.RoundingModeRound)
		}
		cost := priceDec.Mul(amountDec)
		if market.Precision.Cost != nil {
			cost = common.DecimalToPrecision(cost, *market.Precision.Cost, common.RoundingModeTruncate)
		}

		params.SetQuery("price", priceDec)
		params.SetQuery("cost", cost)
	}

	if callOpts.ClientOrderID != nil && *callOpts.ClientOrderID != "" {
		params.SetQuery("client_order_id", *callOpts.ClientOrderID)
	} else {
		params.SetQuery("client_order_id", common.GenerateClientOrderID(c.Name()))
	}

	data, err := c.privatePost(ctx, "create", params)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return parseOrder(data, market.Symbol)
}

// CancelOrder 取消订单
func (c *Coindax) CancelOrder(ctx context.Context, symbol string, orderID string, opts ...option.CallOption) error {
	market, err := c.market(ctx, symbol)
	if err != nil {
		return err
	}

	callOpts := option.NewCallOptions(opts...)
	params := types.NewExValues()
	params.SetQuery("pair", market.ID)
	params.SetQuery("order_id", orderID)
	if callOpts.ClientOrderID != nil && *callOpts.ClientOrderID != "" {
		params.SetQuery("client_order_id", *callOpts.ClientOrderID)
	}

	if _, err := c.privatePost(ctx, "cancel", params); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	return nil
}

// FetchOpenOrders 获取未成交订单
func (c *Coindax) FetchOpenOrders(ctx context.Context, symbol string, opts ...option.CallOption) (model.Orders, error) {
	return c.fetchOrders(ctx, "open", symbol, opts...)
}

// FetchClosedOrders 获取历史订单
func (c *Coindax) FetchClosedOrders(ctx context.Context, symbol string, opts ...option.CallOption) (model.Orders, error) {
	return c.fetchOrders(ctx, "orderHistory", symbol, opts...)
}

// fetchOrders 拉取并解析订单列表
func (c *Coindax) fetchOrders(ctx context.Context, path string, symbol string, opts ...option.CallOption) (model.Orders, error) {
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
	if callOpts.Since != nil && !callOpts.Since.IsZero() {
		params.SetQuery("from", callOpts.Since.UnixMilli())
	}

	data, err := c.privatePost(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode orders: "+err.Error(), data)
	}

	orders := make(model.Orders, 0, len(items))
	for _, item := range items {
		order, err := parseOrder(item, market.Symbol)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// FetchMyTrades 获取我的成交记录
// 交易所没有独立的成交明细接口，从历史订单中的已成交部分推导
func (c *Coindax) FetchMyTrades(ctx context.Context, symbol string, opts ...option.CallOption) (model.Trades, error) {
	orders, err := c.FetchClosedOrders(ctx, symbol, opts...)
	if err != nil {
		return nil, err
	}

	trades := make(model.Trades, 0, len(orders))
	for _, order := range orders {
		if !order.Filled.Present() || order.Filled.IsZero() {
			continue
		}

		price := order.Average
		if !price.Present() {
			price = order.Price
		}

		trade := &model.Trade{
			ID:        order.ID,
			OrderID:   order.ID,
			Symbol:    order.Symbol,
			Side:      order.Side,
			Price:     price.Decimal,
			Amount:    order.Filled.Decimal,
			Cost:      price.Mul(order.Filled.Decimal),
			Timestamp: order.Timestamp,
			Info:      order.Info,
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

// FetchBalance 获取余额
func (c *Coindax) FetchBalance(ctx context.Context) (model.Balances, error) {
	data, err := c.privateGet(ctx, "balances", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch balance: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode balances: "+err.Error(), data)
	}

	balances := make(model.Balances, len(items))
	for _, item := range items {
		balance, err := parseBalance(item)
		if err != nil {
			return nil, err
		}
		balances[balance.Currency] = balance
	}
	return balances, nil
}

// parseBalance 解析单个币种余额
// used 优先取 inOrder 字段，缺失时由 total - free 推导
func parseBalance(data json.RawMessage) (*model.Balance, error) {
	var raw rawBalance
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode balance: "+err.Error(), data)
	}
	if raw.Currency == "" {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "balance missing currency", data)
	}

	var info map[string]interface{}
	_ = json.Unmarshal(data, &info)

	balance := &model.Balance{
		Currency: strings.ToUpper(raw.Currency),
		Free:     raw.Available.Decimal,
		Total:    raw.Total.Decimal,
		Info:     info,
	}
	if raw.InOrder.Present() {
		balance.Used = raw.InOrder.Decimal
	} else if raw.Total.Present() {
		balance.Used = raw.Total.Sub(raw.Available.Decimal)
	}
	if !raw.Total.Present() {
		balance.Total = balance.Free.Add(balance.Used)
	}
	return balance, nil
}

// parseOrderStatus 订单状态映射
// 先统一转小写再查表，未识别的状态原样透传，保持前向兼容
func parseOrderStatus(status string) model.OrderStatus {
	normalized := strings.ToLower(status)
	switch normalized {
	case "open", "partially_filled":
		return model.OrderStatusOpen
	case "cancelled", "canceled":
		return model.OrderStatusCanceled
	case "filled":
		return model.OrderStatusClosed
	default:
		return model.OrderStatus(normalized)
	}
}

// parseOrder 解析单个订单
//
// 交易所把已成交、未成交和已取消数量分开上报：Amount 为未成交数量，
// cancelled_quantity 为已取消数量。统一后 Remaining 包含已取消部分，
// 保证 Filled + Remaining 等于下单时的原始数量
func parseOrder(data json.RawMessage, symbol string) (*model.Order, error) {
	var raw rawOrder
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode order: "+err.Error(), data)
	}
	if raw.ID == "" {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "order missing id", data)
	}

	var info map[string]interface{}
	_ = json.Unmarshal(data, &info)

	var orderType model.OrderType
	switch strings.ToLower(raw.Type) {
	case "limit":
		orderType = model.OrderTypeLimit
	case "market":
		orderType = model.OrderTypeMarket
	default:
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "unrecognized order type "+raw.Type, data)
	}

	var side model.OrderSide
	switch strings.ToLower(raw.Side) {
	case "buy":
		side = model.OrderSideBuy
	case "sell":
		side = model.OrderSideSell
	default:
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "unrecognized order side "+raw.Side, data)
	}

	order := &model.Order{
		ID:            raw.ID,
		ClientOrderID: raw.ClientOrderID,
		Symbol:        symbol,
		Type:          orderType,
		Side:          side,
		Status:        parseOrderStatus(raw.Status),
		Filled:        raw.Filled,
		Average:       raw.AvgPrice,
		Timestamp:     raw.Time,
		Info:          info,
	}

	// 市价单没有委托价格，保持缺失标记
	if orderType != model.OrderTypeMarket {
		order.Price = raw.Price
	}

	if raw.Amount.Present() {
		remaining := raw.Amount.Decimal
		if raw.CancelledQuantity.Present() {
			remaining = remaining.Add(raw.CancelledQuantity.Decimal)
		}
		order.Remaining = types.NewExDecimal(remaining)
	}

	if order.Filled.Present() && order.Remaining.Present() {
		order.Amount = types.NewExDecimal(order.Filled.Add(order.Remaining.Decimal))
	} else {
		order.Amount = raw.Amount
	}

	if order.Filled.Present() && order.Average.Present() {
		order.Cost = types.NewExDecimal(order.Filled.Mul(order.Average.Decimal))
	}

	return order, nil
}
