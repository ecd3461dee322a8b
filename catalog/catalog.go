package catalog

import "github.com/zsmartex/stockfolio/models"

// Catalog is the read-only list of stocks, kept in insertion order.
type Catalog struct {
	stocks []models.Stock
}

func New(stocks []models.Stock) *Catalog {
	c := &Catalog{stocks: make([]models.Stock, len(stocks))}
	copy(c.stocks, stocks)

	return c
}

func (c *Catalog) List() []models.Stock {
	stocks := make([]models.Stock, len(c.stocks))
	copy(stocks, c.stocks)

	return stocks
}

// FindByTicker does an exact, case-sensitive match. Callers upper-case user input first.
func (c *Catalog) FindByTicker(ticker string) (models.Stock, bool) {
	for _, stock := range c.stocks {
		if stock.Ticker == ticker {
			return stock, true
		}
	}

	return models.Stock{}, false
}

func (c *Catalog) Size() int {
	return len(c.stocks)
}
