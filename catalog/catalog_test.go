package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/zsmartex/stockfolio/models"
)

type CatalogTestSuite struct {
	suite.Suite
	stocks  []models.Stock
	catalog *Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	s.stocks = []models.Stock{
		{StockID: 1, Ticker: "AAPL", CompanyName: "Apple Inc.", Price: 150.75},
		{StockID: 2, Ticker: "GOOGL", CompanyName: "Alphabet Inc.", Price: 2750.1},
		{StockID: 3, Ticker: "TSLA", CompanyName: "Tesla, Inc.", Price: 695.5},
	}
	s.catalog = New(s.stocks)
}

func (s *CatalogTestSuite) TestList() {
	stocks := s.catalog.List()

	s.Equal(s.stocks, stocks)
	s.Equal(3, s.catalog.Size())
}

func (s *CatalogTestSuite) TestListReturnsCopy() {
	stocks := s.catalog.List()
	stocks[0].Price = 1

	s.Equal(150.75, s.catalog.List()[0].Price)
}

func (s *CatalogTestSuite) TestNewCopiesInput() {
	s.stocks[0].Ticker = "MSFT"

	_, found := s.catalog.FindByTicker("AAPL")
	s.True(found)
}

func (s *CatalogTestSuite) TestFindByTicker() {
	for _, stock := range s.stocks {
		found, ok := s.catalog.FindByTicker(strings.ToUpper(stock.Ticker))

		s.True(ok)
		s.Equal(stock, found)
	}
}

func (s *CatalogTestSuite) TestFindByTickerIsCaseSensitive() {
	_, found := s.catalog.FindByTicker("aapl")
	s.False(found)
}

func (s *CatalogTestSuite) TestFindByTickerMissing() {
	stock, found := s.catalog.FindByTicker("ZZZZ")

	s.False(found)
	s.Equal(models.Stock{}, stock)
}

func (s *CatalogTestSuite) TestFindByTickerReturnsFirstMatch() {
	c := New([]models.Stock{
		{StockID: 7, Ticker: "DUP"},
		{StockID: 8, Ticker: "DUP"},
	})

	stock, found := c.FindByTicker("DUP")
	s.True(found)
	s.Equal(int64(7), stock.StockID)
}

func (s *CatalogTestSuite) TestEmpty() {
	c := New(nil)

	s.Empty(c.List())
	s.Equal(0, c.Size())
}

func TestCatalog(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
