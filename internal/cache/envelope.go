package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"cryptochart/internal/domain"
)

// Envelope type discriminators. A cached payload is either a single
// struct, a homogeneous list of structs, or a list of plain strings.
const (
	typeCoin        = "Coin"
	typeCoinHistory = "CoinHistory"
	typeCoinList    = "Coin[]"
	typeStringList  = "array"
)

// ErrCorruptCache marks a cache row whose envelope parsed as JSON but is
// structurally unusable: missing or unknown type, missing data, or a
// payload that does not decode into the declared variant. Unlike a plain
// JSON parse failure, which is treated as a miss, corruption is fatal.
var ErrCorruptCache = errors.New("corrupt cache entry")

// envelope is the persisted wrapper for heterogeneous response shapes.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func encodeEnvelope(typ string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", typ, err)
	}
	return json.Marshal(envelope{Type: typ, Data: data})
}

// parseEnvelope splits the miss/corrupt boundary: a blob that is not valid
// JSON at all reads as a miss (ok false), valid JSON that is not a usable
// envelope is corruption.
func parseEnvelope(blob []byte) (*envelope, bool, error) {
	var probe any
	if err := json.Unmarshal(blob, &probe); err != nil {
		return nil, false, nil
	}

	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, false, ErrCorruptCache
	}
	if env.Type == "" || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, false, ErrCorruptCache
	}

	return &env, true, nil
}

func (env *envelope) decodeCoin() (*domain.Coin, error) {
	if env.Type != typeCoin {
		return nil, fmt.Errorf("%w: expected type %q, found %q", ErrCorruptCache, typeCoin, env.Type)
	}
	var coin domain.Coin
	if err := json.Unmarshal(env.Data, &coin); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCache, err)
	}
	return &coin, nil
}

func (env *envelope) decodeCoinList() ([]domain.Coin, error) {
	if env.Type != typeCoinList {
		return nil, fmt.Errorf("%w: expected type %q, found %q", ErrCorruptCache, typeCoinList, env.Type)
	}
	var coins []domain.Coin
	if err := json.Unmarshal(env.Data, &coins); err != nil || coins == nil {
		return nil, fmt.Errorf("%w: invalid %s payload", ErrCorruptCache, typeCoinList)
	}
	return coins, nil
}

func (env *envelope) decodeStringList() ([]string, error) {
	if env.Type != typeStringList {
		return nil, fmt.Errorf("%w: expected type %q, found %q", ErrCorruptCache, typeStringList, env.Type)
	}
	var values []string
	if err := json.Unmarshal(env.Data, &values); err != nil || values == nil {
		return nil, fmt.Errorf("%w: invalid %s payload", ErrCorruptCache, typeStringList)
	}
	return values, nil
}

func (env *envelope) decodeCoinHistory() (*domain.CoinHistory, error) {
	if env.Type != typeCoinHistory {
		return nil, fmt.Errorf("%w: expected type %q, found %q", ErrCorruptCache, typeCoinHistory, env.Type)
	}
	var history domain.CoinHistory
	if err := json.Unmarshal(env.Data, &history); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCache, err)
	}
	return &history, nil
}
