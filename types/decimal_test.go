package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExDecimal_UnmarshalJSON_PresentAndAbsent(t *testing.T) {
	var payload struct {
		Price  ExDecimal `json:"price"`
		Amount ExDecimal `json:"amount"`
		Empty  ExDecimal `json:"empty"`
		Null   ExDecimal `json:"null"`
	}

	raw := []byte(`{"price":"12.34","amount":0,"empty":"","null":null}`)
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !payload.Price.Present() || payload.Price.String() != "12.34" {
		t.Fatalf("price=(%v,%v), want (12.34,present)", payload.Price.String(), payload.Price.Present())
	}
	// a real zero is present, it must not look like a missing field
	if !payload.Amount.Present() || !payload.Amount.IsZero() {
		t.Fatalf("amount=(%v,%v), want (0,present)", payload.Amount.String(), payload.Amount.Present())
	}
	if payload.Empty.Present() {
		t.Fatalf("empty string should be absent")
	}
	if payload.Null.Present() {
		t.Fatalf("null should be absent")
	}

	// missing key stays absent
	var missing struct {
		Price ExDecimal `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{}`), &missing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if missing.Price.Present() {
		t.Fatalf("missing field should be absent")
	}
}

func TestExDecimal_MarshalJSON(t *testing.T) {
	present := NewExDecimal(decimal.RequireFromString("1.50"))
	b, err := json.Marshal(present)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"1.5"` {
		t.Fatalf("marshal present=%s, want %q", b, `"1.5"`)
	}

	var absent ExDecimal
	b, err = json.Marshal(absent)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("marshal absent=%s, want null", b)
	}
}

func TestExDecimalFromString(t *testing.T) {
	d, err := ExDecimalFromString("  3.14 ")
	if err != nil {
		t.Fatalf("ExDecimalFromString: %v", err)
	}
	if !d.Present() || d.String() != "3.14" {
		t.Fatalf("got (%v,%v), want (3.14,present)", d.String(), d.Present())
	}

	d, err = ExDecimalFromString("")
	if err != nil {
		t.Fatalf("ExDecimalFromString: %v", err)
	}
	if d.Present() {
		t.Fatalf("empty string should be absent")
	}

	if _, err := ExDecimalFromString("abc"); err == nil {
		t.Fatalf("expected error for invalid number")
	}
}
