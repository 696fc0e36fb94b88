package main

import (
	"fmt"
	"os"
	"path/filepath"
	"smartshop/auth"
	"smartshop/format"
	"smartshop/infrastructure/http/client"
	"smartshop/internal"
	"smartshop/services"
	"smartshop/storage"
	"smartshop/ui"

	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Admin console terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	store, err := storage.OpenBadgerStore(filepath.Join(config.BadgerFilepath, "admin"), log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = store.Close() }()

	ctx, stop := internal.InterruptContext()
	defer stop()

	api := client.NewAdminClient(config.AdminAPIURL, config.RequestTimeout, log)
	admin := services.NewAdminService(api, auth.NewSession(store, auth.AdminKeys, log), log)
	input := services.NewInputBar(os.Stdin, nil, log)
	printer := ui.NewPrinter(os.Stdout, config.Colours, format.Messages(format.ParseLocale(config.Locale)))

	log.Info("Admin console started", "admin_api", config.AdminAPIURL)
	printer.Println("📚 SmartShop documents · type help")
	if err = ui.NewAdminConsole(admin, input, printer, config.RequestTimeout, log).Run(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
