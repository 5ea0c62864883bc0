package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/stockpulse/quote-data/internal/api"
	"github.com/stockpulse/quote-data/internal/directory"
)

func main() {
	baseURL := flag.String("base-url", "https://query1.finance.yahoo.com", "quote endpoint base URL")
	ticker := flag.String("ticker", "", "ticker to fetch (default: every directory entry)")
	flag.Parse()

	client := api.NewClient(*baseURL, api.WithTimeout(10*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if *ticker != "" {
		fetchOne(ctx, client, *ticker)
		return
	}

	// No ticker given: walk the built-in directory.
	dir := directory.Default()
	for _, company := range dir.Companies() {
		symbol, err := dir.Resolve(company)
		if err != nil {
			log.Fatalf("resolve %s: %v", company, err)
		}
		fmt.Printf("=== %s (%s) ===\n", company, symbol)
		fetchOne(ctx, client, symbol)
	}
}

func fetchOne(ctx context.Context, client *api.Client, ticker string) {
	quote, err := client.GetQuote(ctx, ticker)
	if err != nil {
		log.Fatalf("GetQuote(%s) failed: %v", ticker, err)
	}
	fmt.Printf("LastPrice: %.2f\n", quote.LastPrice)
	fmt.Printf("DayHigh:   %.2f\n", quote.DayHigh)
}
