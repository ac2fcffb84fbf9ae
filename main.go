package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/app"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/config"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/database"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/notifications"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"
	"github.com/danyllosoareszup/loja-virtual-testes/pkg/rabbitmq"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "loja-virtual: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	// --- Database ---
	dbCfg := database.Config{Driver: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN, LogQueries: cfg.DatabaseLogQueries}
	if cfg.DatabaseDriver == "sqlite" {
		dbCfg.MaxOpenConns = 1
	}
	db, err := database.Open(dbCfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	// --- RabbitMQ (optional) ---
	deps := app.Dependencies{DB: db, Config: cfg, Logger: log}
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:    cfg.RabbitMQURL,
			Queues: []string{services.PurchaseEventsQueue, services.QuestionEventsQueue},
		}, log)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		deps.Publisher = mqClient

		notifier := notifications.NewQuestionNotifier(log)
		g.Go(func() error {
			return mqClient.Consume(ctx, services.QuestionEventsQueue, notifier.Handle)
		})
	} else {
		log.Warn("RABBITMQ_URL is empty, events will not be published")
	}

	// --- HTTP Server ---
	application, err := app.NewApp(deps)
	if err != nil {
		return err
	}

	g.Go(func() error {
		log.Info("starting server", "port", cfg.AppPort)
		return application.Listen(cfg.AppPort)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")
		return application.Shutdown()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server gracefully stopped")
	return nil
}
