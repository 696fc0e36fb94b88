package main

import (
	"fmt"
	"os"
	"path/filepath"
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
		fmt.Fprintf(os.Stderr, "Shop terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the storefront chat and blocks until the shopper leaves.
// Deferred cleanups run before main exits.
func run() (int, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	store, err := storage.OpenBadgerStore(filepath.Join(config.BadgerFilepath, "shop"), log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = store.Close() }()

	ctx, stop := internal.InterruptContext()
	defer stop()

	locale := format.ParseLocale(config.Locale)
	api := client.NewChatClient(config.ChatAPIURL, config.RequestTimeout, log)
	chat := services.NewChatService(api, store, locale, log)
	input := services.NewInputBar(os.Stdin, chat.Busy, log)
	printer := ui.NewPrinter(os.Stdout, config.Colours, format.Messages(locale))
	probe := ui.NewImageProbe(config.RequestTimeout, log)

	log.Info("Shop started", "chat_api", config.ChatAPIURL)
	printer.Println("🛒 Smart Shop · /help")
	if err = ui.NewShop(chat, input, printer, probe, config.RequestTimeout, log).Run(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
