package cache

import (
	"testing"
	"time"
)

func TestRequestKey(t *testing.T) {
	date := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "no params",
			got:  requestKey(OpGetCoins),
			want: "getCoins",
		},
		{
			name: "view coin with date",
			got:  requestKey(OpViewCoin, intKeyParam(363), optionalDateKeyParam(&date), "USD"),
			want: "viewCoin::363::2024-01-15::USD",
		},
		{
			name: "view coin without date",
			got:  requestKey(OpViewCoin, intKeyParam(363), optionalDateKeyParam(nil), "USD"),
			want: "viewCoin::363::null::USD",
		},
		{
			name: "history",
			got: requestKey(OpViewCoinHistory,
				intKeyParam(363), dateKeyParam(date), dateKeyParam(date.AddDate(0, 0, 7)), "price", "EUR"),
			want: "viewCoinHistory::363::2024-01-15::2024-01-22::price::EUR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestRequestKey_OrderSensitive(t *testing.T) {
	a := requestKey(OpViewCoin, "363", "null", "USD")
	b := requestKey(OpViewCoin, "null", "363", "USD")
	if a == b {
		t.Errorf("keys with reordered params must differ, both %q", a)
	}
}

func TestRequestKey_Deterministic(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := requestKey(OpViewCoin, intKeyParam(7), optionalDateKeyParam(&date), "EUR")
	b := requestKey(OpViewCoin, intKeyParam(7), optionalDateKeyParam(&date), "EUR")
	if a != b {
		t.Errorf("same call produced different keys: %q vs %q", a, b)
	}
}
