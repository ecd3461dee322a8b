package entities

import "github.com/zsmartex/stockfolio/models"

type StocksEntity struct {
	Stocks []models.Stock `json:"stocks"`
}

type StockEntity struct {
	Stock models.Stock `json:"stock"`
}
