package coindax

import (
	"context"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/lemconn/cdxlink/common"
	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/types"
)

const (
	// marketsCacheKey 市场目录的缓存键
	marketsCacheKey = "coindax:markets"
	// marketsCacheTTL 市场目录的缓存有效期
	marketsCacheTTL = time.Hour
)

// LoadMarkets 加载市场信息
// 优先读外部缓存，命中时不发出网络请求；未命中时拉取交易对列表，
// 成功后写回缓存（有效期1小时），失败不触碰已有缓存
func (c *Coindax) LoadMarkets(ctx context.Context, reload bool) error {
	if !reload {
		c.mu.RLock()
		loaded := len(c.marketsBySymbol) > 0
		c.mu.RUnlock()
		if loaded {
			return nil
		}

		if cached, ok := c.cache.Get(marketsCacheKey); ok {
			if markets, ok := cached.(model.Markets); ok {
				c.storeMarkets(markets)
				return nil
			}
		}
	}

	markets, err := c.fetchMarkets(ctx)
	if err != nil {
		return err
	}

	c.cache.Set(marketsCacheKey, markets, marketsCacheTTL)
	c.storeMarkets(markets)
	return nil
}

// fetchMarkets 拉取并解析交易对列表
func (c *Coindax) fetchMarkets(ctx context.Context) (model.Markets, error) {
	data, err := c.publicGet(ctx, "market/pairs", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch pairs: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode pairs: "+err.Error(), data)
	}

	markets := make(model.Markets, 0, len(items))
	for _, item := range items {
		market, err := parseMarket(item)
		if err != nil {
			return nil, err
		}
		markets = append(markets, market)
	}
	return markets, nil
}

// storeMarkets 写入市场映射
func (c *Coindax) storeMarkets(markets model.Markets) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.marketsBySymbol = make(map[string]*model.Market, len(markets))
	c.marketsByID = make(map[string]*model.Market, len(markets))
	for _, market := range markets {
		c.marketsBySymbol[market.Symbol] = market
		c.marketsByID[market.ID] = market
	}
}

// FetchMarkets 获取市场列表
func (c *Coindax) FetchMarkets(ctx context.Context) (model.Markets, error) {
	if err := c.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	return c.GetMarkets()
}

// GetMarket 获取单个市场信息，支持统一符号和交易所原始ID
func (c *Coindax) GetMarket(symbol string) (*model.Market, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if market, ok := c.marketsBySymbol[symbol]; ok {
		return market, nil
	}
	if market, ok := c.marketsByID[symbol]; ok {
		return market, nil
	}
	return nil, exchange.NewAPIError(exchange.KindUnknownSymbol, "", "market not found: "+symbol, nil)
}

// GetMarkets 从内存中获取所有市场信息
func (c *Coindax) GetMarkets() (model.Markets, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	markets := make(model.Markets, 0, len(c.marketsBySymbol))
	for _, market := range c.marketsBySymbol {
		markets = append(markets, market)
	}
	return markets, nil
}

// parseMarket 解析单个交易对
// Symbol 恒等于 Base + "/" + Quote；手续费率从百分比归一为小数；
// 精度取非负小数位数，缺失字段保持零值
func parseMarket(data json.RawMessage) (*model.Market, error) {
	var raw rawPair
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode pair: "+err.Error(), data)
	}
	if raw.Base == "" || raw.Quote == "" {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "pair missing base/quote", data)
	}

	var info map[string]interface{}
	_ = json.Unmarshal(data, &info)

	market := &model.Market{
		ID:      raw.Symbol,
		Symbol:  common.NormalizeSymbol(raw.Base, raw.Quote),
		Base:    strings.ToUpper(raw.Base),
		Quote:   strings.ToUpper(raw.Quote),
		BaseID:  raw.BaseID,
		QuoteID: raw.QuoteID,
		Active:  raw.Active == nil || *raw.Active,
		Info:    info,
	}

	// 手续费率百分比 -> 小数
	hundred := decimal.NewFromInt(100)
	if raw.TakerFeeRate.Present() {
		market.Taker = raw.TakerFeeRate.Div(hundred)
	}
	if raw.MakerFeeRate.Present() {
		market.Maker = raw.MakerFeeRate.Div(hundred)
	}

	market.Precision.Amount = precisionPlaces(raw.AmountPrecision)
	market.Precision.Price = precisionPlaces(raw.PricePrecision)
	market.Precision.Cost = precisionPlaces(raw.CostPrecision)

	market.Limits.Amount.Min = raw.MinAmount.Decimal
	market.Limits.Amount.Max = raw.MaxAmount.Decimal
	market.Limits.Price.Min = raw.MinPrice.Decimal
	market.Limits.Price.Max = raw.MaxPrice.Decimal
	market.Limits.Cost.Min = raw.MinCost.Decimal

	return market, nil
}

// precisionPlaces 精度字段转非负小数位数
// 缺失返回 nil 而不是 0，缺失不等于 0 位小数；
// 整数按小数位数解释，非整数按 tick size 解释（如 "0.01" -> 2）
func precisionPlaces(d types.ExDecimal) *int {
	if !d.Present() {
		return nil
	}
	if !d.Decimal.IsInteger() {
		places := common.PrecisionFromTickSize(d.String())
		return &places
	}
	places := int(d.IntPart())
	if places < 0 {
		places = 0
	}
	return &places
}

// FetchCurrencies 获取币种列表
func (c *Coindax) FetchCurrencies(ctx context.Context) (model.Currencies, error) {
	data, err := c.publicGet(ctx, "currency", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch currencies: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode currencies: "+err.Error(), data)
	}

	currencies := make(model.Currencies, len(items))
	for _, item := range items {
		currency, err := parseCurrency(item)
		if err != nil {
			return nil, err
		}
		currencies[currency.Code] = currency
	}
	return currencies, nil
}

// parseCurrency 解析单个币种
// 存在多个提现平台时选 priority 最小的作为规范平台；
// 规范平台的充值和提现同时暂停时 Active 为 false
func parseCurrency(data json.RawMessage) (*model.Currency, error) {
	var raw rawCurrency
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode currency: "+err.Error(), data)
	}
	if raw.Currency == "" {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "currency missing code", data)
	}

	var info map[string]interface{}
	_ = json.Unmarshal(data, &info)

	currency := &model.Currency{
		ID:        raw.Currency,
		Code:      strings.ToUpper(raw.Currency),
		Name:      raw.Name,
		Active:    true,
		Precision: precisionPlaces(raw.Precision),
		Info:      info,
	}

	var selected *rawCurrencyPlatform
	for i := range raw.Platforms {
		platform := &raw.Platforms[i]
		if selected == nil || platform.Priority.LessThan(selected.Priority.Decimal) {
			selected = platform
		}
	}
	if selected != nil {
		currency.Fee = selected.WithdrawalFee
		currency.Limits.Withdraw.Min = selected.MinWithdrawal
		currency.Limits.Withdraw.Max = selected.MaxWithdrawal
		currency.Active = !(selected.DepositSuspended && selected.WithdrawalSuspended)
	}

	return currency, nil
}
