package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/zsmartex/stockfolio/config"
	"github.com/zsmartex/stockfolio/controllers/entities"
)

const Greeting = "BD6 Assignment"

func (ctrl *Controller) GetIndex(c *fiber.Ctx) error {
	return c.Status(200).SendString(Greeting)
}

func (ctrl *Controller) GetStocks(c *fiber.Ctx) error {
	stocks := ctrl.Catalog.List()

	if len(stocks) == 0 {
		config.Logger.Debug("Catalog is empty")

		return c.Status(404).SendString("No stocks found")
	}

	return c.Status(200).JSON(entities.StocksEntity{Stocks: stocks})
}

func (ctrl *Controller) GetStock(c *fiber.Ctx) error {
	ticker := strings.ToUpper(utils.CopyString(c.Params("ticker")))

	stock, found := ctrl.Catalog.FindByTicker(ticker)
	if !found {
		config.Logger.WithField("ticker", ticker).Debug("Stock not found")

		return c.Status(404).SendString(fmt.Sprintf("No stock found with this ticker %s", ticker))
	}

	return c.Status(200).JSON(entities.StockEntity{Stock: stock})
}
