package entities

import "github.com/zsmartex/stockfolio/models"

type TradeEntity struct {
	Trade models.Trade `json:"trade"`
}
