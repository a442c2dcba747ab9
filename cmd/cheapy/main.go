package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/cheapy/internal/app"
	"go.uber.org/zap"
)

//	@title			Cheapy API
//	@version		1.0
//	@description	Shared expense ledger with kitty settlement

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	if err := run(); err != nil {
		// the logger may not be configured yet
		fmt.Fprintln(os.Stderr, "cheapy:", err)
		zap.L().Error("cheapy stopped with an error", zap.Error(err))
		_ = zap.L().Sync()
		os.Exit(1)
	}
	zap.L().Info("all systems closed without errors")
	_ = zap.L().Sync()
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var application app.ApplicationI = app.New()
	if err := application.Start(ctx); err != nil {
		cancel()
		return err
	}
	return application.Wait(ctx, cancel)
}
