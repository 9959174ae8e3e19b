package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-tracker/internal/clients/metrics"
	"max.ks1230/expense-tracker/internal/clients/tracing"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/shell"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the YAML config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	conf, err := config.New(*configPath)
	if err != nil {
		log.Fatal("failed to init config:", err)
	}
	if err = logger.Init(conf.Log()); err != nil {
		log.Fatal("failed to init logger:", err)
	}

	code := 0
	if err = run(conf); err != nil {
		logger.Error("expense tracker stopped", zap.Error(err))
		code = 1
	}
	logger.Sync()
	os.Exit(code)
}

// run returns only after the tracer is closed, so spans are flushed on every path.
func run(conf *config.Service) error {
	logger.Info("Expense tracker init - start")

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		return errors.Wrap(err, "init tracing")
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(sigCtx)

	if conf.Metrics().Addr() != "" {
		srv, err := metrics.NewServer(conf.Metrics())
		if err != nil {
			return errors.Wrap(err, "init metrics server")
		}
		g.Go(func() error {
			return srv.Serve(ctx)
		})
	}

	sh := shell.New(ledger.New(), os.Stdin, os.Stdout, conf.App())

	logger.Info("Expense tracker init - end")

	g.Go(func() error {
		defer stop()
		return sh.Run(ctx)
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
