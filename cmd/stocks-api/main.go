package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zsmartex/stockfolio/catalog"
	"github.com/zsmartex/stockfolio/config"
	"github.com/zsmartex/stockfolio/controllers"
	"github.com/zsmartex/stockfolio/fixtures"
	"github.com/zsmartex/stockfolio/ledger"
	"github.com/zsmartex/stockfolio/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	seed, err := fixtures.Load()
	if err != nil {
		config.Logger.Fatalf("Failed to load seed data: %v", err)
	}

	stocks := catalog.New(seed.Stocks)
	trades := ledger.NewTradeBook(seed.Trades)
	config.Logger.Infof("Loaded %d stocks and %d trades, next trade id %d", stocks.Size(), trades.Size(), trades.LastTradeID()+1)

	r := routes.SetupRouter(controllers.NewController(stocks, trades))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		config.Logger.Info("Shutting down")
		if err := r.Shutdown(); err != nil {
			config.Logger.Errorf("Shutdown failed: %v", err)
		}
	}()

	config.Logger.Infof("Listening on %s", config.App.ListenAddr())
	if err := r.Listen(config.App.ListenAddr()); err != nil {
		config.Logger.Fatalf("Server stopped: %v", err)
	}
}
