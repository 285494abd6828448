package coindax

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestParseOHLCV_AlignsToBucketStart(t *testing.T) {
	// 2023-11-14T22:13:20Z，对齐到 22:00:00
	raw := `{"time":1700000000000,"open":"100","high":"110","low":"95","close":"105","volume":"12.5"}`

	ohlcv, err := parseOHLCV(json.RawMessage(raw), "1h")
	require.NoError(t, err)
	require.Equal(t, int64(1699999200000), ohlcv.Timestamp.UnixMilli())
	require.Equal(t, "100", ohlcv.Open.String())
	require.Equal(t, "105", ohlcv.Close.String())
	require.Equal(t, "12.5", ohlcv.Volume.String())
}

func TestParseOHLCV_WeeklyAlignment(t *testing.T) {
	// 周线对齐到不晚于该时刻的星期日零点 (2023-11-12)
	raw := `{"time":1700000000000,"open":"1","high":"2","low":"0.5","close":"1.5","volume":"3"}`

	ohlcv, err := parseOHLCV(json.RawMessage(raw), "1w")
	require.NoError(t, err)
	require.Equal(t, int64(1699747200000), ohlcv.Timestamp.UnixMilli())
}

func TestParseOHLCV_MissingTime(t *testing.T) {
	_, err := parseOHLCV(json.RawMessage(`{"open":"1","close":"2"}`), "1h")
	require.Error(t, err)
}
