package coindax

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/lemconn/cdxlink/common"
)

const (
	coindaxName    = "coindax"
	coindaxBaseURL = "https://api.coindax.com"

	// coindaxAPIPrefix 所有接口路径的统一前缀
	// 签名载荷使用前缀之后的相对路径（如 "order/book"）
	coindaxAPIPrefix = "/api/v1/"

	// coindaxRateLimit 相邻请求之间的最小间隔提示
	// 核心不做调度，仅向调用方暴露该值
	coindaxRateLimit = 50 * time.Millisecond
)

// Config 客户端配置
type Config struct {
	// BaseURL 基础 URL
	BaseURL string `validate:"required,url"`
	// Proxy 代理地址
	Proxy string `validate:"omitempty,url"`
	// Timeout HTTP 超时时间
	Timeout time.Duration `validate:"omitempty,min=0"`
	// Debug 是否打印请求/响应日志
	Debug bool
}

// Client Coindax 客户端
type Client struct {
	// HTTPClient HTTP 客户端
	HTTPClient *common.HTTPClient

	// APIKey API 密钥
	APIKey string

	// SecretKey 私钥
	SecretKey string

	// Logger 日志器
	Logger zerolog.Logger
}

// NewClient 创建 Coindax 客户端
func NewClient(apiKey, secretKey string, options map[string]interface{}) (*Client, error) {
	cfg := Config{
		BaseURL: coindaxBaseURL,
	}

	if v, ok := options["baseURL"].(string); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := options["proxy"].(string); ok {
		cfg.Proxy = v
	}
	if v, ok := options["timeout"].(time.Duration); ok {
		cfg.Timeout = v
	}
	if v, ok := options["debug"].(bool); ok {
		cfg.Debug = v
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid coindax config: %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("exchange", coindaxName).Logger()
	if v, ok := options["logger"].(*zerolog.Logger); ok && v != nil {
		logger = *v
	}
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	client := &Client{
		HTTPClient: common.NewHTTPClient(cfg.BaseURL),
		APIKey:     apiKey,
		SecretKey:  secretKey,
		Logger:     logger,
	}
	client.HTTPClient.SetLogger(logger)

	if cfg.Proxy != "" {
		if err := client.HTTPClient.SetProxy(cfg.Proxy); err != nil {
			return nil, err
		}
	}
	if cfg.Timeout > 0 {
		client.HTTPClient.SetTimeout(cfg.Timeout)
	}

	return client, nil
}

// RateLimit 返回相邻请求之间的最小间隔提示
func (c *Client) RateLimit() time.Duration {
	return coindaxRateLimit
}
