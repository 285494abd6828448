package cdxlink

import (
	"fmt"
	"sync"

	"github.com/lemconn/cdxlink/coindax"
	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/option"
)

// 交易所名称常量
const (
	// ExchangeCoindax Coindax 交易所
	ExchangeCoindax = "coindax"
)

// ExchangeFactory 交易所工厂函数
type ExchangeFactory func(apiKey, secretKey string, options map[string]interface{}) (exchange.Exchange, error)

// Registry 交易所注册表
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ExchangeFactory
}

var globalRegistry = &Registry{
	factories: make(map[string]ExchangeFactory),
}

// init 注册所有支持的交易所
func init() {
	Register(ExchangeCoindax, coindax.NewCoindax)
}

// Register 注册交易所
func Register(name string, factory ExchangeFactory) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.factories[name] = factory
}

// NewExchange 创建交易所实例（Functional Options Pattern）
func NewExchange(name string, opts ...option.Option) (exchange.Exchange, error) {
	options := &option.ExchangeOptions{
		Options: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(options)
	}

	// 将选项转换为 map[string]interface{} 以兼容 ExchangeFactory
	optionsMap := make(map[string]interface{})
	if options.BaseURL != "" {
		optionsMap["baseURL"] = options.BaseURL
	}
	if options.Proxy != "" {
		optionsMap["proxy"] = options.Proxy
	}
	if options.Timeout > 0 {
		optionsMap["timeout"] = options.Timeout
	}
	if options.Debug {
		optionsMap["debug"] = options.Debug
	}
	if options.Logger != nil {
		optionsMap["logger"] = options.Logger
	}
	if options.Cache != nil {
		optionsMap["cache"] = options.Cache
	}
	for k, v := range options.Options {
		optionsMap[k] = v
	}

	globalRegistry.mu.RLock()
	factory, ok := globalRegistry.factories[name]
	globalRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExchangeNotSupported, name)
	}

	return factory(options.APIKey, options.SecretKey, optionsMap)
}

// GetSupportedExchanges 获取支持的交易所列表
func GetSupportedExchanges() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	exchanges := make([]string, 0, len(globalRegistry.factories))
	for name := range globalRegistry.factories {
		exchanges = append(exchanges, name)
	}
	return exchanges
}

// IsExchangeSupported 检查交易所是否支持
func IsExchangeSupported(name string) bool {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	_, ok := globalRegistry.factories[name]
	return ok
}
