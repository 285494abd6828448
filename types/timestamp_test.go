package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestExTimestamp_UnmarshalJSON_UnitDetection(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"seconds", `1700000000`, time.Unix(1700000000, 0)},
		{"milliseconds", `1700000000000`, time.UnixMilli(1700000000000)},
		{"milliseconds string", `"1700000000000"`, time.UnixMilli(1700000000000)},
		{"microseconds", `1700000000000000`, time.UnixMicro(1700000000000000)},
		{"nanoseconds", `1700000000000000000`, time.Unix(0, 1700000000000000000)},
		{"rfc3339", `"2023-11-14T22:13:20Z"`, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts ExTimestamp
			if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if !ts.Equal(tc.want) {
				t.Fatalf("got %v, want %v", ts.Time, tc.want)
			}
		})
	}
}

func TestExTimestamp_UnmarshalJSON_NullAndEmpty(t *testing.T) {
	for _, in := range []string{`null`, `""`} {
		var ts ExTimestamp
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if !ts.IsZero() {
			t.Fatalf("unmarshal %s: got %v, want zero time", in, ts.Time)
		}
	}
}

func TestExTimestamp_MarshalJSON_KeepsSourceFormat(t *testing.T) {
	var ts ExTimestamp
	if err := json.Unmarshal([]byte(`1700000000`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `1700000000` {
		t.Fatalf("marshal=%s, want 1700000000", b)
	}

	// 默认毫秒
	ms := ExTimestampFromMilli(1700000000123)
	b, err = json.Marshal(ms)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `1700000000123` {
		t.Fatalf("marshal=%s, want 1700000000123", b)
	}
}
