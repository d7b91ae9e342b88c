package domain

// HistoryData is one daily sample. The meaning of Value depends on the
// DataType of the owning CoinHistory (price, marketCap, tradeVolume, ...).
type HistoryData struct {
	Date  string   `json:"date"` // YYYY-MM-DD
	Value *float64 `json:"value"`
}

// CoinHistory is a date-ranged series of samples for one coin. It owns its
// Coin and its HistoryData slice; decoding always builds fresh copies.
type CoinHistory struct {
	Coin         *Coin         `json:"coin"`
	DataType     string        `json:"dataType"`
	BaseCurrency string        `json:"baseCurrency"`
	Data         []HistoryData `json:"data"`
}
