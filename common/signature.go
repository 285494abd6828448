package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SignHMAC256Base64 HMAC-SHA256签名（base64编码，Coindax 私有接口使用）
func SignHMAC256Base64(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// BuildQueryString 构建查询字符串（键排序后URL编码）
func BuildQueryString(params map[string]interface{}) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		v := params[k]
		var value string
		switch val := v.(type) {
		case string:
			value = val
		case int:
			value = strconv.Itoa(val)
		case int64:
			value = strconv.FormatInt(val, 10)
		case float64:
			value = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			value = strconv.FormatBool(val)
		default:
			value = fmt.Sprintf("%v", val)
		}
		parts = append(parts, fmt.Sprintf("%s=%s", k, url.QueryEscape(value)))
	}
	return strings.Join(parts, "&")
}

// GetTimestamp 获取时间戳（毫秒）
// 签名 nonce 必须取当前墙钟毫秒，不允许缓存或复用
func GetTimestamp() int64 {
	return time.Now().UnixMilli()
}

// ISO8601 毫秒时间戳转 ISO8601 字符串（UTC，毫秒精度）
func ISO8601(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z")
}

// ParseISO8601 解析 ISO8601 字符串为毫秒时间戳
func ParseISO8601(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("invalid iso8601 timestamp %q: %w", s, err)
	}
	return t.UnixMilli(), nil
}
