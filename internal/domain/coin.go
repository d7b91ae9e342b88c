package domain

// Coin is a market snapshot for one coin on one date in one base currency.
// Field names match the CryptoCurrencyChart API payload; nullable values
// are pointers so that absent fields survive an encode/decode round trip
// as null rather than zero.
type Coin struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Symbol          string   `json:"symbol"`
	BaseCurrency    *string  `json:"baseCurrency"`
	Date            *string  `json:"date"` // YYYY-MM-DD
	Price           *float64 `json:"price"`
	OpenPrice       *float64 `json:"openPrice"`
	ClosePrice      *float64 `json:"closePrice"`
	HighPrice       *float64 `json:"highPrice"`
	LowPrice        *float64 `json:"lowPrice"`
	MarketCap       *float64 `json:"marketCap"`
	TradeVolume     *float64 `json:"tradeVolume"`
	FiatTradeVolume *float64 `json:"fiatTradeVolume"`
	Rank            *int     `json:"rank"`
	Supply          *float64 `json:"supply"`
	TradeHealth     *float64 `json:"tradeHealth"`
	Sentiment       *string  `json:"sentiment"`
	FirstData       *string  `json:"firstData"`      // date of first available data
	MostRecentData  *string  `json:"mostRecentData"` // date of most recent data
	Status          *string  `json:"status"`
}
