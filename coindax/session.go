package coindax

import (
	"context"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/types"
)

// Session 账户接口的 access token 会话
// token 及其绝对过期时间由会话持有，每次账户请求前检查，
// 过期后重新走 client_credentials 授权，不存在包级别的全局 token 状态
type Session struct {
	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// tokenResponse POST token 的响应
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token 返回当前有效的 access token，不存在或已过期时返回 false
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accessToken == "" || !time.Now().Before(s.expiresAt) {
		return "", false
	}
	return s.accessToken, true
}

// Update 保存新 token，expiresIn 为有效期秒数
func (s *Session) Update(accessToken string, expiresIn int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
}

// ensureToken 返回有效的 access token，必要时重新授权
func (c *Coindax) ensureToken(ctx context.Context) (string, error) {
	if token, ok := c.session.Token(); ok {
		return token, nil
	}

	if c.client.APIKey == "" || c.client.SecretKey == "" {
		return "", exchange.NewAPIError(exchange.KindAuthentication, "",
			"coindax account endpoints require apiKey and secretKey", nil)
	}

	params := types.NewExValues()
	params.SetQuery("grant_type", "client_credentials")
	params.SetQuery("client_id", c.client.APIKey)
	params.SetQuery("client_secret", c.client.SecretKey)

	data, err := c.request(ctx, "POST", "token", ScopePublic, params)
	if err != nil {
		return "", err
	}

	var resp tokenResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", exchange.NewAPIError(exchange.KindBadResponse, "", "decode token response: "+err.Error(), data)
	}
	if resp.AccessToken == "" || resp.ExpiresIn <= 0 {
		return "", exchange.NewAPIError(exchange.KindBadResponse, "", "token response missing access_token", data)
	}

	c.session.Update(resp.AccessToken, resp.ExpiresIn)
	return resp.AccessToken, nil
}
