package coindax

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClient_ValidatesConfig(t *testing.T) {
	_, err := NewClient("", "", map[string]interface{}{"baseURL": "not-a-url"})
	require.Error(t, err)

	_, err = NewClient("", "", map[string]interface{}{"proxy": "::bad::"})
	require.Error(t, err)

	client, err := NewClient("k", "s", map[string]interface{}{
		"timeout": 5 * time.Second,
	})
	require.NoError(t, err)
	require.Equal(t, "k", client.APIKey)
	require.Equal(t, coindaxRateLimit, client.RateLimit())
}
