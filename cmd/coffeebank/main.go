// Package main запускает HTTP-сервер демо-приложения коффибанка.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mtbank/coffeebank/internal/animation"
	"github.com/mtbank/coffeebank/internal/config"
	"github.com/mtbank/coffeebank/internal/gamification"
	"github.com/mtbank/coffeebank/internal/handler"
	"github.com/mtbank/coffeebank/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	rules, err := config.LoadRules(cfg)
	if err != nil {
		sugar.Fatalw("rules initialization error", "error", err.Error())
	}

	svc := service.NewService(gamification.NewEngine(rules), logger)

	// Запуск приложения считается активностью за сегодняшний день.
	svc.AdvanceDay(time.Now())

	player := animation.NewPlayer(logger)
	h := handler.NewHandler(svc, player, logger)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: h.SetupRouter(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фонового процесса сброса ежедневных заданий
	g.Go(func() error {
		svc.StartDailyReset(ctx)
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting coffeebank server", "addr", cfg.RunAddress, "preset", cfg.Preset)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		player.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
