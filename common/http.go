package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// HTTPClient HTTP客户端
// 请求头按调用传入，不在客户端上累积，并发签名调用互不干扰
type HTTPClient struct {
	client  *http.Client
	baseURL string
	headers map[string]string
	proxy   string
	logger  zerolog.Logger
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		headers: make(map[string]string),
		logger:  zerolog.Nop(),
	}
}

// SetProxy 设置代理
func (c *HTTPClient) SetProxy(proxyURL string) error {
	if proxyURL == "" {
		c.client.Transport = nil
		c.proxy = ""
		return nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}

	c.client.Transport = &http.Transport{
		Proxy: http.ProxyURL(proxy),
	}
	c.proxy = proxyURL
	return nil
}

// GetProxy 获取当前代理设置
func (c *HTTPClient) GetProxy() string {
	return c.proxy
}

// SetHeader 设置所有请求共用的请求头（如 User-Agent）
func (c *HTTPClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetTimeout 设置超时时间
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetLogger 设置日志器
func (c *HTTPClient) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// Get 发送GET请求
func (c *HTTPClient) Get(ctx context.Context, path string, params map[string]interface{}) ([]byte, error) {
	return c.Request(ctx, http.MethodGet, path, params, nil, nil)
}

// Post 发送POST请求
func (c *HTTPClient) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.Request(ctx, http.MethodPost, path, nil, body, nil)
}

// Request 发送HTTP请求
// headers 为本次请求独有的请求头（签名头等），与共用请求头合并后发送
func (c *HTTPClient) Request(ctx context.Context, method, path string, params map[string]interface{}, body interface{}, headers map[string]string) ([]byte, error) {
	url := c.baseURL + path

	// 构建查询参数 - 使用 BuildQueryString 确保与签名时一致（排序和URL编码）
	if len(params) > 0 {
		query := BuildQueryString(params)
		if query != "" {
			url += "?" + query
		}
	}

	// 构建请求体
	var reqBody io.Reader
	var bodyBytes []byte
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyBytes = jsonData
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// 设置请求头：共用头在前，本次请求头可以覆盖
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Bytes("body", bodyBytes).
		Msg("http request")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn().Err(closeErr).Msg("close response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Bytes("body", respBody).
		Msg("http response")

	// 检查状态码，响应体一并返回，交易所在 4xx 响应中携带错误信封
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return respBody, fmt.Errorf("http error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
