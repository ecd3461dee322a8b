package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsmartex/stockfolio/models"
)

func TestLoad(t *testing.T) {
	seed, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []models.Stock{
		{StockID: 1, Ticker: "AAPL", CompanyName: "Apple Inc.", Price: 150.75},
		{StockID: 2, Ticker: "GOOGL", CompanyName: "Alphabet Inc.", Price: 2750.1},
		{StockID: 3, Ticker: "TSLA", CompanyName: "Tesla, Inc.", Price: 695.5},
	}, seed.Stocks)

	assert.Equal(t, []models.Trade{
		{TradeID: 1, StockID: 1, Quantity: 10, TradeType: "buy", TradeDate: "2024-08-07"},
		{TradeID: 2, StockID: 2, Quantity: 5, TradeType: "sell", TradeDate: "2024-08-06"},
		{TradeID: 3, StockID: 3, Quantity: 7, TradeType: "buy", TradeDate: "2024-08-05"},
	}, seed.Trades)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("stocks: ["))
	assert.Error(t, err)
}
