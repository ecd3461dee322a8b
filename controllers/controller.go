package controllers

import (
	"github.com/zsmartex/stockfolio/ledger"
	"github.com/zsmartex/stockfolio/models"
)

type StockCatalog interface {
	List() []models.Stock
	FindByTicker(ticker string) (models.Stock, bool)
}

// Controller serves the HTTP API over the stores it is given.
type Controller struct {
	Catalog StockCatalog
	Trades  ledger.TradeRepository
}

func NewController(catalog StockCatalog, trades ledger.TradeRepository) *Controller {
	return &Controller{
		Catalog: catalog,
		Trades:  trades,
	}
}
