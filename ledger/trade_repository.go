package ledger

import "github.com/zsmartex/stockfolio/models"

type TradeRepository interface {
	Store(trade models.Trade) (models.Trade, error)
}
