package main

import (
	"flag"
	"log"
	"os"

	"gic-bank/internal/cli"
	"gic-bank/internal/config"
	"gic-bank/internal/gateway"
	"gic-bank/internal/usecase"
)

func main() {
	configPath := flag.String("config", "gicbank.yaml", "Path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := gateway.NewFileLogger(cfg.LogDir, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logger.Close()

	// Wire the application by hand: gateway adapters behind the usecase
	// interfaces, the interactive menu on top.
	bank := usecase.NewBankUseCase(logger, gateway.SystemClock{})
	menu := cli.New(bank, os.Stdin, os.Stdout, cfg.RecentTransactions)
	menu.Run()
}
