package ledger

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/zsmartex/stockfolio/models"
)

// TradeBook stores all trades in-memory, ordered by trade id.
// Ids come from a counter owned by the book, so they stay unique under concurrent writers.
type TradeBook struct {
	trades      *treemap.Map
	tradeMutex  sync.RWMutex
	lastTradeID int64
}

var _ TradeRepository = (*TradeBook)(nil)

// Create a new trade book holding the seed trades with their original ids.
func NewTradeBook(seed []models.Trade) *TradeBook {
	tradeBook := &TradeBook{
		trades: treemap.NewWith(utils.Int64Comparator),
	}

	for _, trade := range seed {
		tradeBook.trades.Put(trade.TradeID, trade)
		if trade.TradeID > tradeBook.lastTradeID {
			tradeBook.lastTradeID = trade.TradeID
		}
	}

	return tradeBook
}

// Enter a new trade. Any TradeID set by the caller is replaced by the next id.
func (t *TradeBook) Enter(trade models.Trade) models.Trade {
	t.tradeMutex.Lock()
	defer t.tradeMutex.Unlock()

	t.lastTradeID += 1
	trade.TradeID = t.lastTradeID
	t.trades.Put(trade.TradeID, trade)

	return trade
}

func (t *TradeBook) Store(trade models.Trade) (models.Trade, error) {
	return t.Enter(trade), nil
}

func (t *TradeBook) GetByID(id int64) (models.Trade, error) {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	value, found := t.trades.Get(id)
	if !found {
		return models.Trade{}, fmt.Errorf("trade %d: %w", id, models.ErrTradeNotFound)
	}

	return value.(models.Trade), nil
}

// Return all trades ordered by id.
func (t *TradeBook) Trades() []models.Trade {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	trades := make([]models.Trade, 0, t.trades.Size())
	for _, value := range t.trades.Values() {
		trades = append(trades, value.(models.Trade))
	}

	return trades
}

func (t *TradeBook) Size() int {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	return t.trades.Size()
}

func (t *TradeBook) LastTradeID() int64 {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	return t.lastTradeID
}
