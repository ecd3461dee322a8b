package models

import "github.com/zsmartex/stockfolio/types"

type Trade struct {
	TradeID   int64           `json:"tradeId" yaml:"tradeId"`
	StockID   int64           `json:"stockId" yaml:"stockId"`
	Quantity  int64           `json:"quantity" yaml:"quantity"`
	TradeType types.TradeType `json:"tradeType" yaml:"tradeType"`
	TradeDate string          `json:"tradeDate" yaml:"tradeDate"`
}
