package helpers

import (
	"math"

	"github.com/zsmartex/stockfolio/models"
)

const (
	MessageStockID   = "Stock id is required and should be a number"
	MessageQuantity  = "Quantity is required and should be a number"
	MessageTradeType = "Trade type is required and should be a string"
	MessageTradeDate = "Trade date is required and should be a string"
)

// Largest magnitude a JSON number carries without losing integer precision (2^53).
const maxExactInteger = 1 << 53

// "required" rejects zero values, so 0 and "" count as missing.
var tradeRules = []FieldRule{
	{Field: "stockId", Rule: "required|isWholeNumber", Message: MessageStockID},
	{Field: "quantity", Rule: "required|isWholeNumber", Message: MessageQuantity},
	{Field: "tradeType", Rule: "required|isString", Message: MessageTradeType},
	{Field: "tradeDate", Rule: "required|isString", Message: MessageTradeDate},
}

var tradeValidators = map[string]interface{}{
	"isWholeNumber": IsWholeNumber,
}

// ValidateTrade returns the message of the first invalid field, or "" when the payload is valid.
func ValidateTrade(payload map[string]interface{}) string {
	errors := new(Errors)
	Validate(payload, tradeRules, tradeValidators, errors)

	return errors.First()
}

func IsWholeNumber(val interface{}) bool {
	_, ok := toInt64(val)
	return ok
}

// BuildTrade converts a payload accepted by ValidateTrade. Keys outside the trade shape,
// tradeId included, are dropped.
func BuildTrade(payload map[string]interface{}) models.Trade {
	stock_id, _ := toInt64(payload["stockId"])
	quantity, _ := toInt64(payload["quantity"])
	trade_type, _ := payload["tradeType"].(string)
	trade_date, _ := payload["tradeDate"].(string)

	return models.Trade{
		StockID:   stock_id,
		Quantity:  quantity,
		TradeType: trade_type,
		TradeDate: trade_date,
	}
}

func toInt64(val interface{}) (int64, bool) {
	switch n := val.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) || math.Trunc(n) != n || math.Abs(n) > maxExactInteger {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
