package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignHMAC256Base64(t *testing.T) {
	// RFC 2104 风格的已知向量
	got := SignHMAC256Base64("The quick brown fox jumps over the lazy dog", "key")
	require.Equal(t, "97yD9DBThCSxMpjmqm+xQ+9NWaFJRhdZl0edvC0aPNg=", got)

	// 相同输入产生相同签名
	require.Equal(t, got, SignHMAC256Base64("The quick brown fox jumps over the lazy dog", "key"))

	// 密钥或消息变化，签名随之变化
	require.NotEqual(t, got, SignHMAC256Base64("The quick brown fox jumps over the lazy dog", "key2"))
	require.NotEqual(t, got, SignHMAC256Base64("another message", "key"))
}

func TestBuildQueryString(t *testing.T) {
	require.Equal(t, "", BuildQueryString(nil))

	got := BuildQueryString(map[string]interface{}{
		"b": 2,
		"a": "x y",
		"c": true,
	})
	// 键排序后编码
	require.Equal(t, "a=x+y&b=2&c=true", got)
}

func TestISO8601RoundTrip(t *testing.T) {
	require.Equal(t, "1970-01-04T00:00:00.000Z", ISO8601(259200000))
	require.Equal(t, "2023-11-14T22:13:20.000Z", ISO8601(1700000000000))

	ms, err := ParseISO8601("2023-11-14T22:13:20Z")
	require.NoError(t, err)
	require.Equal(t, int64(1700000000000), ms)

	_, err = ParseISO8601("not-a-timestamp")
	require.Error(t, err)
}
