package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"sxc-kitchen/config"
	"sxc-kitchen/console"
	"sxc-kitchen/logger"
	"sxc-kitchen/services"

	"github.com/davecgh/go-spew/spew"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "sxc-kitchen", Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	order := services.NewOrder()

	session := console.New(os.Stdin, os.Stdout, cfg.Restaurant, services.DefaultCatalog(), order, log)
	if err := session.Run(ctx); err != nil {
		log.Error("take order", slog.Any("err", err))
		os.Exit(1)
	}

	lines, total := order.Finalize()
	log.Debug("order finalized", "order_id", order.ID.String(), "lines", len(lines), "total", total.StringFixed(2))
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("order lines\n" + spew.Sdump(lines))
	}

	if err := services.RenderBill(os.Stdout, cfg.Restaurant, order); err != nil {
		log.Error("render bill", slog.Any("err", err))
		os.Exit(1)
	}
}
