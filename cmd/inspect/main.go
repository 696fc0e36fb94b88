package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"smartshop/storage"
	"strings"

	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const previewLength = 60

func main() {
	dbPath := flag.String("db", ".smartshop/shop", "Path to badger DB")
	prefix := flag.String("prefix", "", "Only show keys starting with prefix")
	flag.Parse()

	store, err := storage.OpenReadOnly(*dbPath, logs.GetLoggerFromString("ERROR"))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer func() { _ = store.Close() }()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Size", "Preview"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = store.Scan(func(key string, value []byte) error {
		if !strings.HasPrefix(key, *prefix) {
			return nil
		}
		table.Append([]string{key, fmt.Sprintf("%d B", len(value)), preview(key, value)})
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	table.Render()
}

// preview shows the start of a value on one line. Tokens are never printed.
func preview(key string, value []byte) string {
	if strings.HasSuffix(key, "token") {
		return "********"
	}
	text := strings.Join(strings.Fields(string(value)), " ")
	if len([]rune(text)) > previewLength {
		return string([]rune(text)[:previewLength]) + "…"
	}
	return text
}
