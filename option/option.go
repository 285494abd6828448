package option

import (
	"time"

	"github.com/lemconn/cdxlink/cache"
	"github.com/rs/zerolog"
)

// ExchangeOptions 交易所构造选项
type ExchangeOptions struct {
	// APIKey API 密钥
	APIKey string
	// SecretKey 私钥
	SecretKey string
	// BaseURL 基础 URL（测试时指向 httptest 服务）
	BaseURL string
	// Proxy 代理地址
	Proxy string
	// Timeout HTTP 超时时间
	Timeout time.Duration
	// Debug 是否打印请求/响应日志
	Debug bool
	// Logger 日志器
	Logger *zerolog.Logger
	// Cache 市场目录缓存，不设置时使用进程内缓存
	Cache cache.Store
	// Options 其他自定义选项
	Options map[string]interface{}
}

// Option 构造选项函数类型
type Option func(*ExchangeOptions)

// WithAPIKey 设置 API Key
func WithAPIKey(apiKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.APIKey = apiKey
	}
}

// WithSecretKey 设置 Secret Key
func WithSecretKey(secretKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.SecretKey = secretKey
	}
}

// WithBaseURL 设置基础 URL
func WithBaseURL(baseURL string) Option {
	return func(opts *ExchangeOptions) {
		opts.BaseURL = baseURL
	}
}

// WithProxy 设置代理
func WithProxy(proxy string) Option {
	return func(opts *ExchangeOptions) {
		opts.Proxy = proxy
	}
}

// WithTimeout 设置 HTTP 超时时间
func WithTimeout(timeout time.Duration) Option {
	return func(opts *ExchangeOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug 设置调试模式
func WithDebug(debug bool) Option {
	return func(opts *ExchangeOptions) {
		opts.Debug = debug
	}
}

// WithLogger 设置日志器
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *ExchangeOptions) {
		opts.Logger = &logger
	}
}

// WithCache 设置市场目录缓存
func WithCache(store cache.Store) Option {
	return func(opts *ExchangeOptions) {
		opts.Cache = store
	}
}

// WithOption 设置自定义选项
func WithOption(key string, value interface{}) Option {
	return func(opts *ExchangeOptions) {
		if opts.Options == nil {
			opts.Options = make(map[string]interface{})
		}
		opts.Options[key] = value
	}
}
