package coindax

import (
	"context"
	"net/http"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/lemconn/cdxlink/cache"
	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/types"
)

// Coindax Coindax 交易所实现
type Coindax struct {
	client  *Client
	signer  *Signer
	session *Session
	cache   cache.Store

	marketsBySymbol map[string]*model.Market // 统一符号 -> 市场
	marketsByID     map[string]*model.Market // 交易所原始ID -> 市场
	mu              sync.RWMutex             // 保护市场映射的读写锁
}

// NewCoindax 创建 Coindax 交易所实例
func NewCoindax(apiKey, secretKey string, options map[string]interface{}) (exchange.Exchange, error) {
	client, err := NewClient(apiKey, secretKey, options)
	if err != nil {
		return nil, err
	}

	store, _ := options["cache"].(cache.Store)
	if store == nil {
		store = cache.NewMemory()
	}

	return &Coindax{
		client:          client,
		signer:          NewSigner(apiKey, secretKey),
		session:         &Session{},
		cache:           store,
		marketsBySymbol: make(map[string]*model.Market),
		marketsByID:     make(map[string]*model.Market),
	}, nil
}

// Name 返回交易所名称
func (c *Coindax) Name() string {
	return coindaxName
}

var _ exchange.Exchange = (*Coindax)(nil)

// market 确保市场目录已加载后查找市场
func (c *Coindax) market(ctx context.Context, symbol string) (*model.Market, error) {
	if err := c.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	return c.GetMarket(symbol)
}

// request 签名并发送请求，返回信封中的 data 部分
// 每次调用至多发出一次网络请求，核心不做重试
func (c *Coindax) request(ctx context.Context, method, path string, scope Scope, params *types.ExValues) (json.RawMessage, error) {
	signed, err := c.signer.Sign(path, scope, method, params)
	if err != nil {
		return nil, err
	}

	if scope == ScopeAccount {
		token, err := c.ensureToken(ctx)
		if err != nil {
			return nil, err
		}
		signed.Headers["Authorization"] = "Bearer " + token
	}

	var body interface{}
	if signed.Body != nil {
		body = signed.Body
	}

	respBody, err := c.client.HTTPClient.Request(ctx, signed.Method, coindaxAPIPrefix+signed.Path, nil, body, signed.Headers)
	if err != nil {
		// 非 2xx 响应中可能带错误信封，能分类则返回分类后的错误
		if len(respBody) > 0 {
			var resp apiResponse
			if jsonErr := json.Unmarshal(respBody, &resp); jsonErr == nil {
				if classified := classifyError(&resp, respBody); classified != nil {
					return nil, classified
				}
			}
		}
		return nil, err
	}

	return decodeResponse(respBody)
}

// publicGet 公共 GET 请求
func (c *Coindax) publicGet(ctx context.Context, path string, params *types.ExValues) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, path, ScopePublic, params)
}

// publicPost 公共 POST 请求
func (c *Coindax) publicPost(ctx context.Context, path string, params *types.ExValues) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPost, path, ScopePublic, params)
}

// privateGet 私有 GET 请求
func (c *Coindax) privateGet(ctx context.Context, path string, params *types.ExValues) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, path, ScopePrivate, params)
}

// privatePost 私有 POST 请求
func (c *Coindax) privatePost(ctx context.Context, path string, params *types.ExValues) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPost, path, ScopePrivate, params)
}

// accountPost 账户 POST 请求（Bearer token 认证）
func (c *Coindax) accountPost(ctx context.Context, path string, params *types.ExValues) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPost, path, ScopeAccount, params)
}
