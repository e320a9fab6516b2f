// fetch is a development CLI that calls the upstream providers directly
// and prints the normalized payload, bypassing cache and fallback.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jhconzatti/julishub/internal/config"
	"github.com/jhconzatti/julishub/internal/httpx"
	"github.com/jhconzatti/julishub/internal/logging"
	"github.com/jhconzatti/julishub/internal/market"
	"github.com/jhconzatti/julishub/internal/provider/awesome"
	"github.com/jhconzatti/julishub/internal/provider/bcb"
	"github.com/jhconzatti/julishub/internal/provider/brapi"
)

func main() {
	var product string
	var instrument string
	var days int
	var timeout int

	flag.StringVar(&product, "product", "cotacao", "cotacao | indicadores | exchange-rates | indexes | historico")
	flag.StringVar(&instrument, "instrument", "dolar", "instrument for -product historico")
	flag.IntVar(&days, "days", 30, "history depth in days")
	flag.IntVar(&timeout, "timeout", 10, "request timeout in seconds")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logging.New(logging.Options{Level: "warn"})
	hc := httpx.New(time.Duration(timeout) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout+5)*time.Second)
	defer cancel()

	var payload any
	switch product {
	case "cotacao":
		c := awesome.New(awesome.Config{Name: "awesomeapi", Endpoint: cfg.Awesome.Endpoint}, hc, logging.WithComponent(log, "awesome"))
		payload, err = c.Cotacao(ctx)
	case "indicadores":
		c := bcb.New(bcb.Config{Name: "bcb-sgs", Endpoint: cfg.BCB.Endpoint}, hc, logging.WithComponent(log, "bcb"))
		payload, err = c.Indicadores(ctx)
	case "exchange-rates":
		c := awesome.New(awesome.Config{Name: "awesomeapi", Endpoint: cfg.Awesome.Endpoint}, hc, logging.WithComponent(log, "awesome"))
		payload, err = c.ExchangeTable(ctx)
	case "indexes":
		c := brapi.New(brapi.Config{Name: "brapi", Endpoint: cfg.Brapi.Endpoint, Token: cfg.Brapi.Token}, hc, logging.WithComponent(log, "brapi"))
		payload, err = c.BrazilBoard(ctx)
	case "historico":
		pair, ok := market.HistoryPair(instrument)
		if !ok {
			fmt.Fprintln(os.Stderr, "unsupported instrument:", instrument)
			os.Exit(2)
		}
		c := awesome.New(awesome.Config{Name: "awesomeapi", Endpoint: cfg.Awesome.Endpoint}, hc, logging.WithComponent(log, "awesome"))
		payload, err = c.History(ctx, pair, days)
	default:
		fmt.Fprintln(os.Stderr, "unknown product:", product)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "fetch:", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
