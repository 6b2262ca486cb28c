package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smacross/internal/config"
	"smacross/internal/handler"
	"smacross/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	addr := flag.String("addr", "", "listen address, overrides server.addr")
	eventPath := flag.String("event", "", "invoke once with the event in this file (- for stdin) and exit")
	backtest := flag.Bool("backtest", false, "with -event, run a backtest instead of computing signals")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	zl, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zl.Sync()

	params, err := cfg.Strategy.Params()
	if err != nil {
		zl.Fatal("invalid strategy config", zap.Error(err))
	}
	h := handler.NewHandler(
		cfg.Strategy.FastPeriod,
		cfg.Strategy.SlowPeriod,
		params,
		cfg.Strategy.Policy(),
		cfg.Backtest.Balance(),
		zl,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *eventPath != "" {
		if err := invokeOnce(ctx, h, *eventPath, *backtest); err != nil {
			zl.Fatal("invocation failed", zap.Error(err))
		}
		return
	}

	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := serve(ctx, h, cfg.Server.Addr, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func invokeOnce(ctx context.Context, h *handler.Handler, path string, backtest bool) error {
	var payload []byte
	var err error
	if path == "-" {
		payload, err = io.ReadAll(os.Stdin)
	} else {
		payload, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	var out any
	if backtest {
		out, err = h.Backtest(ctx, payload)
	} else {
		out, err = h.Invoke(ctx, payload)
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func serve(ctx context.Context, h *handler.Handler, addr string, zl *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		zl.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
