package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jhconzatti/julishub/internal/api"
	"github.com/jhconzatti/julishub/internal/blog"
	"github.com/jhconzatti/julishub/internal/config"
	"github.com/jhconzatti/julishub/internal/httpx"
	"github.com/jhconzatti/julishub/internal/logging"
	"github.com/jhconzatti/julishub/internal/market"
	"github.com/jhconzatti/julishub/internal/market/cache"
	"github.com/jhconzatti/julishub/internal/news"
	"github.com/jhconzatti/julishub/internal/provider/awesome"
	"github.com/jhconzatti/julishub/internal/provider/bcb"
	"github.com/jhconzatti/julishub/internal/provider/brapi"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logging.New(logging.Options{}).WithError(err).Fatal("config load failed")
	}

	log := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if cfg.Brapi.Token == "" {
		log.Warn("BRAPI_TOKEN not set, brapi calls run unauthenticated with tighter quotas")
	}

	awesomeClient := awesome.New(awesome.Config{
		Name:                 "awesomeapi",
		Endpoint:             cfg.Awesome.Endpoint,
		MaxRequestsPerMinute: cfg.Awesome.MaxRequestsPerMinute,
		Burst:                cfg.Awesome.Burst,
	}, httpx.New(time.Duration(cfg.Awesome.TimeoutSec)*time.Second), logging.WithComponent(log, "awesome"))

	bcbClient := bcb.New(bcb.Config{
		Name:     "bcb-sgs",
		Endpoint: cfg.BCB.Endpoint,
	}, httpx.New(time.Duration(cfg.BCB.TimeoutSec)*time.Second), logging.WithComponent(log, "bcb"))

	brapiClient := brapi.New(brapi.Config{
		Name:     "brapi",
		Endpoint: cfg.Brapi.Endpoint,
		Token:    cfg.Brapi.Token,
	}, httpx.New(time.Duration(cfg.Brapi.TimeoutSec)*time.Second), logging.WithComponent(log, "brapi"))

	store := cache.New(time.Duration(cfg.Cache.ValidityMinutes)*time.Minute, time.Now)

	chains := market.Chains{
		Cotacao: []market.Source[market.Cotacao]{
			{Name: awesomeClient.Name(), Fetch: awesomeClient.Cotacao},
			{Name: brapiClient.Name(), Fetch: brapiClient.Cotacao},
		},
		CotacaoIndex: brapiClient.IndexQuote,
		Indicadores: []market.Source[market.Indicadores]{
			{Name: bcbClient.Name(), Fetch: bcbClient.Indicadores},
			{Name: brapiClient.Name(), Fetch: brapiClient.Indicadores},
		},
		Exchange: []market.Source[market.ExchangeTable]{
			{Name: awesomeClient.Name(), Fetch: awesomeClient.ExchangeTable},
		},
		BrazilBoard: []market.Source[market.IndexBoard]{
			{Name: brapiClient.Name(), Fetch: brapiClient.BrazilBoard},
		},
		History: []market.HistorySource{awesomeClient},
	}
	marketSvc := market.NewService(store, logging.WithComponent(log, "market"), chains)

	feed := news.NewClient(news.Config{
		FeedURL:  cfg.News.FeedURL,
		MaxItems: cfg.News.MaxItems,
		Timeout:  time.Duration(cfg.News.TimeoutSec) * time.Second,
	}, logging.WithComponent(log, "news"), time.Now)
	newsSvc := news.NewService(feed, store, logging.WithComponent(log, "news"))

	srv := api.NewServer(api.ServerConfig{Host: "0.0.0.0", Port: cfg.Server.Port}, logging.WithComponent(log, "http"))
	srv.AddController(
		api.NewMarketsController(marketSvc, logging.WithComponent(log, "markets")),
		api.NewCalculatorsController(logging.WithComponent(log, "calculators")),
		api.NewContentController(blog.NewStore(), newsSvc, logging.WithComponent(log, "content")),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server shut down cleanly")
}
