package cache

// Operation identifies one cacheable API call. Keys, TTL settings and
// envelope variants are all dispatched on this enum rather than on method
// name strings.
type Operation int

const (
	OpGetCoins Operation = iota
	OpGetDataTypes
	OpGetBaseCurrencies
	OpViewCoin
	OpViewCoinHistory
)

// String returns the API method name for the operation. The name is the
// first component of every request signature, so it must stay stable
// across releases or existing cache rows become unreachable.
func (op Operation) String() string {
	switch op {
	case OpGetCoins:
		return "getCoins"
	case OpGetDataTypes:
		return "getDataTypes"
	case OpGetBaseCurrencies:
		return "getBaseCurrencies"
	case OpViewCoin:
		return "viewCoin"
	case OpViewCoinHistory:
		return "viewCoinHistory"
	default:
		return "unknown"
	}
}
