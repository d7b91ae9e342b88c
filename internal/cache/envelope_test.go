package cache

import (
	"errors"
	"testing"

	"cryptochart/internal/domain"
)

func TestEnvelope_CoinRoundTrip(t *testing.T) {
	price := 40000.5
	coin := &domain.Coin{ID: 363, Name: "Bitcoin", Symbol: "BTC", Price: &price}

	blob, err := encodeEnvelope(typeCoin, coin)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, ok, err := parseEnvelope(blob)
	if err != nil || !ok {
		t.Fatalf("parse: ok=%v err=%v", ok, err)
	}

	decoded, err := env.decodeCoin()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != 363 || decoded.Name != "Bitcoin" {
		t.Errorf("unexpected coin: %+v", decoded)
	}
	if decoded.Price == nil || *decoded.Price != 40000.5 {
		t.Errorf("price = %v, want 40000.5", decoded.Price)
	}
}

func TestEnvelope_CoinListRoundTrip(t *testing.T) {
	coins := []domain.Coin{
		{ID: 1, Name: "Bitcoin", Symbol: "BTC"},
		{ID: 2, Name: "Ethereum", Symbol: "ETH"},
	}

	blob, err := encodeEnvelope(typeCoinList, coins)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, ok, err := parseEnvelope(blob)
	if err != nil || !ok {
		t.Fatalf("parse: ok=%v err=%v", ok, err)
	}

	decoded, err := env.decodeCoinList()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Symbol != "ETH" {
		t.Errorf("unexpected coins: %+v", decoded)
	}
}

func TestEnvelope_StringListRoundTrip(t *testing.T) {
	blob, err := encodeEnvelope(typeStringList, []string{"price", "marketCap"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, ok, err := parseEnvelope(blob)
	if err != nil || !ok {
		t.Fatalf("parse: ok=%v err=%v", ok, err)
	}

	decoded, err := env.decodeStringList()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != "price" {
		t.Errorf("unexpected values: %v", decoded)
	}
}

func TestEnvelope_CoinHistoryRoundTrip(t *testing.T) {
	value := 100.0
	history := &domain.CoinHistory{
		Coin:         &domain.Coin{ID: 363, Name: "Bitcoin"},
		DataType:     "price",
		BaseCurrency: "USD",
		Data:         []domain.HistoryData{{Date: "2024-01-01", Value: &value}},
	}

	blob, err := encodeEnvelope(typeCoinHistory, history)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, ok, err := parseEnvelope(blob)
	if err != nil || !ok {
		t.Fatalf("parse: ok=%v err=%v", ok, err)
	}

	decoded, err := env.decodeCoinHistory()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Coin == nil || decoded.Coin.ID != 363 || decoded.DataType != "price" {
		t.Errorf("unexpected history: %+v", decoded)
	}
	if len(decoded.Data) != 1 || decoded.Data[0].Value == nil || *decoded.Data[0].Value != 100 {
		t.Errorf("unexpected samples: %+v", decoded.Data)
	}
}

func TestParseEnvelope_InvalidJSONIsMiss(t *testing.T) {
	for _, blob := range [][]byte{
		[]byte("not json at all"),
		[]byte("{truncated"),
		[]byte(""),
	} {
		env, ok, err := parseEnvelope(blob)
		if env != nil || ok || err != nil {
			t.Errorf("blob %q: got (%v, %v, %v), want miss", blob, env, ok, err)
		}
	}
}

func TestParseEnvelope_StructurallyBadIsCorrupt(t *testing.T) {
	for _, blob := range [][]byte{
		[]byte(`{"data": [1, 2]}`),
		[]byte(`{"type": "Coin"}`),
		[]byte(`{"type": "Coin", "data": null}`),
		[]byte(`{"type": "", "data": {}}`),
		[]byte(`"just a string"`),
		[]byte(`[1, 2, 3]`),
	} {
		_, ok, err := parseEnvelope(blob)
		if ok || !errors.Is(err, ErrCorruptCache) {
			t.Errorf("blob %s: got (ok=%v, err=%v), want ErrCorruptCache", blob, ok, err)
		}
	}
}

func TestEnvelope_TypeMismatchIsCorrupt(t *testing.T) {
	blob, err := encodeEnvelope(typeStringList, []string{"price"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, ok, err := parseEnvelope(blob)
	if err != nil || !ok {
		t.Fatalf("parse: ok=%v err=%v", ok, err)
	}

	if _, err := env.decodeCoin(); !errors.Is(err, ErrCorruptCache) {
		t.Errorf("decodeCoin on %q envelope: got %v, want ErrCorruptCache", typeStringList, err)
	}
	if _, err := env.decodeCoinList(); !errors.Is(err, ErrCorruptCache) {
		t.Errorf("decodeCoinList on %q envelope: got %v, want ErrCorruptCache", typeStringList, err)
	}
	if _, err := env.decodeCoinHistory(); !errors.Is(err, ErrCorruptCache) {
		t.Errorf("decodeCoinHistory on %q envelope: got %v, want ErrCorruptCache", typeStringList, err)
	}
}

func TestEnvelope_UndecodablePayloadIsCorrupt(t *testing.T) {
	env, ok, err := parseEnvelope([]byte(`{"type": "Coin[]", "data": {"not": "a list"}}`))
	if err != nil || !ok {
		t.Fatalf("parse: ok=%v err=%v", ok, err)
	}
	if _, err := env.decodeCoinList(); !errors.Is(err, ErrCorruptCache) {
		t.Errorf("got %v, want ErrCorruptCache", err)
	}
}
