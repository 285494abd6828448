package coindax

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/lemconn/cdxlink/common"
	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/types"
)

// Scope 接口访问级别
type Scope string

const (
	// ScopePublic 公共接口，无需认证
	ScopePublic Scope = "public"
	// ScopePrivate 私有接口，HMAC 签名认证
	ScopePrivate Scope = "private"
	// ScopeAccount 账户接口，access token 认证
	ScopeAccount Scope = "account"
)

// 签名请求头
const (
	headerAccessKey       = "x-access-key"
	headerAccessSign      = "x-access-sign"
	headerAccessTimestamp = "x-access-timestamp"
)

// SignedRequest 签名后的请求
type SignedRequest struct {
	// Path 相对路径（GET 请求已拼接查询参数）
	Path string
	// Method HTTP 方法
	Method string
	// Headers 认证请求头
	Headers map[string]string
	// Body JSON 请求体（GET 请求为空）
	Body json.RawMessage
}

// Signer Coindax 签名工具
type Signer struct {
	apiKey    string
	secretKey string
}

// NewSigner 创建签名工具
func NewSigner(apiKey, secretKey string) *Signer {
	return &Signer{
		apiKey:    apiKey,
		secretKey: secretKey,
	}
}

// Sign 构造签名请求
//
//   - 公共接口：GET 参数拼接为查询字符串，POST 参数编码为 JSON 请求体，不带认证头
//   - 私有接口：签名载荷为 METHOD + "/" + path（非 GET 追加 JSON 请求体），
//     HMAC-SHA256 后 base64 编码，附带毫秒时间戳 nonce
//
// nonce 取签名时刻的墙钟时间，每次调用重新生成，重试必须重新签名
func (s *Signer) Sign(path string, scope Scope, method string, params *types.ExValues) (*SignedRequest, error) {
	if params == nil {
		params = types.NewExValues()
	}

	req := &SignedRequest{
		Method:  method,
		Headers: make(map[string]string),
	}

	bodyStr := ""
	if method == http.MethodGet {
		req.Path = params.JoinPath(path)
	} else {
		req.Path = path
		if m := params.EncodeMap(); len(m) > 0 {
			body, err := params.EncodeJSON()
			if err != nil {
				return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "encode request body: "+err.Error(), nil)
			}
			bodyStr = string(body)
			req.Body = json.RawMessage(body)
		}
	}

	if scope == ScopePrivate {
		if s.apiKey == "" || s.secretKey == "" {
			return nil, exchange.NewAPIError(exchange.KindAuthentication, "",
				"coindax private endpoints require apiKey and secretKey", nil)
		}

		req.Headers[headerAccessKey] = s.apiKey
		req.Headers[headerAccessSign] = s.Signature(method, path, bodyStr)
		req.Headers[headerAccessTimestamp] = strconv.FormatInt(common.GetTimestamp(), 10)
	}

	return req, nil
}

// Signature 计算签名
// 载荷为 METHOD + "/" + path，非 GET 请求追加 JSON 请求体；
// 相同输入产生相同签名，方法、路径、请求体、密钥任一变化签名随之变化
func (s *Signer) Signature(method, path, body string) string {
	payload := method + "/" + path
	if method != http.MethodGet {
		payload += body
	}
	return common.SignHMAC256Base64(payload, s.secretKey)
}
