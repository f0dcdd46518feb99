package money

import (
	"encoding/json"
	"testing"
)

func TestMoney(t *testing.T) {
	usd := MustLookup("USD")
	eur := MustLookup("EUR")
	jpy := MustLookup("JPY")

	t.Run("construction and extraction", func(t *testing.T) {
		m := New(1234, usd)
		if got := m.Subunits(); got != 1234 {
			t.Errorf("Subunits() = %d, want 1234", got)
		}
		if got := m.Currency(); got != usd {
			t.Errorf("Currency() = %v, want USD", got)
		}
		if got := m.Amount().String(); got != "12.34" {
			t.Errorf("Amount() = %s, want 12.34", got)
		}
	})

	t.Run("equality", func(t *testing.T) {
		tests := []struct {
			a, b Money
			want bool
		}{
			{New(100, usd), New(100, usd), true},
			{New(100, usd), New(101, usd), false},
			{New(100, usd), New(100, eur), false},
			{New(0, usd), Money{}, false}, // zero Money has no currency
		}
		for _, tt := range tests {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			m    Money
			want string
		}{
			{New(1234, usd), "12.34 USD"},
			{New(-50, eur), "-0.50 EUR"},
			{New(500, jpy), "500 JPY"},
		}
		for _, tt := range tests {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		}
	})

	t.Run("json round trip", func(t *testing.T) {
		m := New(4200, eur)
		data, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != `{"subunits":4200,"currency":"EUR"}` {
			t.Errorf("Marshal = %s", data)
		}
		var got Money
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if !got.Equal(m) {
			t.Errorf("round trip = %v, want %v", got, m)
		}
	})

	t.Run("json unknown currency", func(t *testing.T) {
		var got Money
		if err := json.Unmarshal([]byte(`{"subunits":1,"currency":"ZZZ"}`), &got); err == nil {
			t.Error("Unmarshal with unknown currency did not fail")
		}
	})
}

func TestCurrencyMarshaling(t *testing.T) {
	usd := MustLookup("USD")

	text, err := usd.MarshalText()
	if err != nil || string(text) != "USD" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}

	var c Currency
	if err := c.UnmarshalText([]byte("eur")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if c.Code != "EUR" {
		t.Errorf("UnmarshalText = %v, want EUR", c.Code)
	}

	v, err := usd.Value()
	if err != nil || v != "USD" {
		t.Errorf("Value() = %v, %v", v, err)
	}

	var scanned Currency
	if err := scanned.Scan([]byte("jpy")); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if scanned.Code != "JPY" {
		t.Errorf("Scan = %v, want JPY", scanned.Code)
	}
	if err := scanned.Scan(42); err == nil {
		t.Error("Scan(42) did not fail")
	}
}
