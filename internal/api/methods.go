package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cryptochart/internal/domain"
)

// Defaults applied when the optional string parameters are left empty.
const (
	DefaultBaseCurrency = "USD"
	DefaultDataType     = "price"
)

// GetCoins returns the full coin list known to the API.
func (c *Client) GetCoins(ctx context.Context) ([]domain.Coin, error) {
	response, err := c.apiCall(ctx, "getCoins", nil)
	if err != nil {
		return nil, err
	}

	var coins []domain.Coin
	if err := unmarshalListField(response, "coins", "getCoins", &coins); err != nil {
		return nil, err
	}

	return coins, nil
}

// GetDataTypes returns the data type names usable with ViewCoinHistory.
func (c *Client) GetDataTypes(ctx context.Context) ([]string, error) {
	response, err := c.apiCall(ctx, "getDataTypes", nil)
	if err != nil {
		return nil, err
	}

	var dataTypes []string
	if err := unmarshalListField(response, "dataTypes", "getDataTypes", &dataTypes); err != nil {
		return nil, err
	}

	return dataTypes, nil
}

// GetBaseCurrencies returns the base currency codes the API can quote in.
func (c *Client) GetBaseCurrencies(ctx context.Context) ([]string, error) {
	response, err := c.apiCall(ctx, "getBaseCurrencies", nil)
	if err != nil {
		return nil, err
	}

	var currencies []string
	if err := unmarshalListField(response, "baseCurrencies", "getBaseCurrencies", &currencies); err != nil {
		return nil, err
	}

	return currencies, nil
}

// ViewCoin returns the snapshot for one coin. A nil date means the most
// recent data; an empty baseCurrency means USD.
func (c *Client) ViewCoin(ctx context.Context, coinID int, date *time.Time, baseCurrency string) (*domain.Coin, error) {
	if baseCurrency == "" {
		baseCurrency = DefaultBaseCurrency
	}

	params := []string{intParam(coinID), optionalDateParam(date), stringParam(baseCurrency)}
	response, err := c.apiCall(ctx, "viewCoin", params)
	if err != nil {
		return nil, err
	}

	raw, ok := response["coin"]
	if !ok {
		return nil, invalidShape("viewCoin", "coin")
	}

	var coin domain.Coin
	if err := json.Unmarshal(raw, &coin); err != nil {
		return nil, invalidShape("viewCoin", "coin")
	}

	return &coin, nil
}

// ViewCoinHistory returns a data series for one coin over [start, end].
// Empty dataType means "price" and empty baseCurrency means USD. The value
// of each daily sample is taken from the response field named by the
// server-confirmed dataType.
func (c *Client) ViewCoinHistory(ctx context.Context, coinID int, start, end time.Time, dataType, baseCurrency string) (*domain.CoinHistory, error) {
	if dataType == "" {
		dataType = DefaultDataType
	}
	if baseCurrency == "" {
		baseCurrency = DefaultBaseCurrency
	}

	params := []string{
		intParam(coinID),
		dateParam(start),
		dateParam(end),
		stringParam(dataType),
		stringParam(baseCurrency),
	}
	response, err := c.apiCall(ctx, "viewCoinHistory", params)
	if err != nil {
		return nil, err
	}

	history, err := parseCoinHistory(response)
	if err != nil {
		return nil, err
	}

	return history, nil
}

func parseCoinHistory(response map[string]json.RawMessage) (*domain.CoinHistory, error) {
	rawCoin, ok := response["coin"]
	if !ok {
		return nil, invalidShape("viewCoinHistory", "coin")
	}
	var coin domain.Coin
	if err := json.Unmarshal(rawCoin, &coin); err != nil {
		return nil, invalidShape("viewCoinHistory", "coin")
	}

	var dataType string
	if err := json.Unmarshal(response["dataType"], &dataType); err != nil || dataType == "" {
		return nil, invalidShape("viewCoinHistory", "dataType")
	}

	var baseCurrency string
	if err := json.Unmarshal(response["baseCurrency"], &baseCurrency); err != nil {
		return nil, invalidShape("viewCoinHistory", "baseCurrency")
	}

	rawData, ok := response["data"]
	if !ok {
		return nil, invalidShape("viewCoinHistory", "data")
	}
	var days []map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &days); err != nil || days == nil {
		return nil, invalidShape("viewCoinHistory", "data")
	}

	data := make([]domain.HistoryData, 0, len(days))
	for _, day := range days {
		var sample domain.HistoryData
		if raw, ok := day["date"]; ok {
			if err := json.Unmarshal(raw, &sample.Date); err != nil {
				return nil, invalidShape("viewCoinHistory", "data")
			}
		}
		// Project the field named by dataType into the sample value.
		if raw, ok := day[dataType]; ok {
			if err := json.Unmarshal(raw, &sample.Value); err != nil {
				return nil, invalidShape("viewCoinHistory", "data")
			}
		}
		data = append(data, sample)
	}

	return &domain.CoinHistory{
		Coin:         &coin,
		DataType:     dataType,
		BaseCurrency: baseCurrency,
		Data:         data,
	}, nil
}

// unmarshalListField extracts a required list field from a response object.
// A missing field, a JSON null, or a value of the wrong shape all mean the
// server answered 200 with a payload we cannot use.
func unmarshalListField[T any](response map[string]json.RawMessage, field, method string, out *[]T) error {
	raw, ok := response[field]
	if !ok {
		return invalidShape(method, field)
	}
	if err := json.Unmarshal(raw, out); err != nil || *out == nil {
		return invalidShape(method, field)
	}
	return nil
}

func invalidShape(method, field string) error {
	return fmt.Errorf("%w: invalid response for %s, missing or invalid `%s`", ErrServer, method, field)
}
