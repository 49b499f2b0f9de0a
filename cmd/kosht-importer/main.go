package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kosht/internal/amqp"
	"kosht/internal/config"
	"kosht/internal/importer"
	"kosht/internal/log"
	"kosht/internal/store/sqlite"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig()).WithComponent(log.ComponentImporter)
	log.SetDefault(logger)

	logger.Info("Starting kosht-importer")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.BankAPIToken == "" {
		logger.Error("BANK_API_TOKEN is required for the importer worker")
		os.Exit(1)
	}

	repo, err := sqlite.NewRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite store", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	statements := importer.NewHTTPStatementClient(cfg.BankAPIBaseURL, cfg.BankAPIToken, cfg.BankAccount, cfg.ImportTimeout)
	imp := importer.New(statements, repo)
	imp.SalaryCounterparty = cfg.SalaryCounterparty

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handle := func(msg *amqp.ImportRequestMessage) error {
		days := msg.Days
		if days <= 0 {
			days = cfg.ImportDays
		}

		runCtx, runCancel := context.WithTimeout(ctx, cfg.ImportTimeout)
		defer runCancel()

		report, err := imp.Run(runCtx, days, time.Now())
		if err != nil {
			logger.Error("Statement import failed", "error", err, "days", days)
			return err
		}

		logger.Info("Statement import finished",
			"days", days,
			"received", report.TotalReceived,
			"inserted_expenses", report.InsertedExpenses,
			"inserted_incomes", report.InsertedIncomes,
			"skipped_duplicates", report.SkippedDupes,
			"skipped_transfers", report.SkippedTransfers)
		return nil
	}

	go func() {
		if err := amqpClient.ConsumeImportRequests(ctx, handle); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("Message consumption failed", "error", err)
			}
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	cancel()
	logger.Info("Importer worker stopped")
}
