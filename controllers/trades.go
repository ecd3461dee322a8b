package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockfolio/config"
	"github.com/zsmartex/stockfolio/controllers/entities"
	"github.com/zsmartex/stockfolio/controllers/helpers"
)

func (ctrl *Controller) CreateTrade(c *fiber.Ctx) error {
	payload := make(map[string]interface{})

	// An unreadable body is validated as an empty one.
	if err := c.BodyParser(&payload); err != nil || payload == nil {
		config.Logger.Debugf("Failed to parse trade payload: %v", err)
		payload = make(map[string]interface{})
	}

	if message := helpers.ValidateTrade(payload); len(message) > 0 {
		config.Logger.WithField("reason", message).Debug("Trade rejected")

		return c.Status(400).SendString(message)
	}

	trade, err := ctrl.Trades.Store(helpers.BuildTrade(payload))
	if err != nil {
		return fmt.Errorf("store trade: %w", err)
	}

	config.Logger.WithFields(logrus.Fields{
		"trade_id":   trade.TradeID,
		"stock_id":   trade.StockID,
		"quantity":   trade.Quantity,
		"trade_type": trade.TradeType,
	}).Info("Trade created")

	return c.Status(201).JSON(entities.TradeEntity{Trade: trade})
}
