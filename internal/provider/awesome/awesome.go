// Package awesome is the client for the AwesomeAPI economia service, the
// primary provider for spot quotes, daily history and the exchange-rate
// table. One attempt per call, no internal retries; the orchestrator
// decides whether to try an alternate provider.
package awesome

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/jhconzatti/julishub/internal/httpx"
	"github.com/jhconzatti/julishub/internal/market"
)

type Config struct {
	Name     string
	Endpoint string
	// MaxRequestsPerMinute caps outbound calls to respect the free tier.
	// 0 disables the limiter.
	MaxRequestsPerMinute int
	Burst                int
}

type Client struct {
	cfg     Config
	http    *httpx.Client
	limiter *rate.Limiter
	log     *logrus.Entry
}

func New(cfg Config, hc *httpx.Client, log *logrus.Entry) *Client {
	if cfg.Name == "" {
		cfg.Name = "AwesomeAPI"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://economia.awesomeapi.com.br"
	}
	var limiter *rate.Limiter
	if cfg.MaxRequestsPerMinute > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.MaxRequestsPerMinute)/60.0), burst)
	}
	return &Client{cfg: cfg, http: hc, limiter: limiter, log: log}
}

func (c *Client) Name() string { return c.cfg.Name }

// lastEntry is one pair in a /last response.
type lastEntry struct {
	Bid       string `json:"bid"`
	PctChange string `json:"pctChange"`
}

// dailyEntry is one day in a /json/daily response, newest first upstream.
type dailyEntry struct {
	Bid       string `json:"bid"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	url := strings.TrimSuffix(c.cfg.Endpoint, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("GET %s -> %d: %s", url, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	c.log.WithField("url", url).Debug("fetched")
	return nil
}

func (c *Client) last(ctx context.Context, pairs []string) (map[string]lastEntry, error) {
	var raw map[string]lastEntry
	if err := c.get(ctx, "/last/"+strings.Join(pairs, ","), &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("last: empty body for %d pairs", len(pairs))
	}
	return raw, nil
}

// key maps a pair code like "USD-BRL" onto the provider's response key.
func key(pair string) string { return strings.ReplaceAll(pair, "-", "") }

// Cotacao fetches the dollar and bitcoin spot quotes. The Ibovespa
// sub-field is not carried by this provider and is left zero for the
// orchestrator to fill from its dedicated source.
func (c *Client) Cotacao(ctx context.Context) (market.Cotacao, error) {
	raw, err := c.last(ctx, []string{"USD-BRL", "BTC-USD"})
	if err != nil {
		return market.Cotacao{}, err
	}
	usd, okUSD := raw[key("USD-BRL")]
	btc, okBTC := raw[key("BTC-USD")]
	if !okUSD || !okBTC {
		return market.Cotacao{}, fmt.Errorf("cotacao: incomplete body (usd=%v btc=%v)", okUSD, okBTC)
	}
	return market.Cotacao{
		Dolar:   market.Quote{Valor: market.MoneyString(usd.Bid), Var: market.MoneyString(usd.PctChange)},
		Bitcoin: market.Quote{Valor: market.MoneyString(btc.Bid), Var: market.MoneyString(btc.PctChange)},
	}, nil
}

// History fetches up to days closing prices for pair and returns them
// chronological ascending: the provider delivers newest first, so the raw
// sequence is reversed exactly.
func (c *Client) History(ctx context.Context, pair string, days int) ([]market.HistoryPoint, error) {
	var raw []dailyEntry
	if err := c.get(ctx, fmt.Sprintf("/json/daily/%s/%d", pair, days), &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("daily %s: empty body", pair)
	}
	out := make([]market.HistoryPoint, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		e := raw[i]
		ts, err := strconv.ParseInt(e.Timestamp, 10, 64)
		if err != nil {
			continue
		}
		bid, err := strconv.ParseFloat(e.Bid, 64)
		if err != nil {
			continue
		}
		out = append(out, market.HistoryPoint{
			Data:  time.Unix(ts, 0).UTC().Format("02/01"),
			Valor: bid,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("daily %s: no parsable entries", pair)
	}
	return out, nil
}

// ExchangeTable fetches every declared pair in one batch call and builds
// the table row by row. Pairs missing from the response become zero rows;
// derived rows are computed from the fetched values and carry a synthetic
// zero variance.
func (c *Client) ExchangeTable(ctx context.Context) (market.ExchangeTable, error) {
	raw, err := c.last(ctx, market.FetchedPairCodes())
	if err != nil {
		return market.ExchangeTable{}, err
	}

	values := make(map[string]decimal.Decimal, len(raw))
	rates := make([]market.ExchangeRate, 0, len(market.FetchedPairs)+len(market.DerivedPairs))
	for _, spec := range market.FetchedPairs {
		row := market.ExchangeRate{
			Pair:  spec.Pair,
			Label: spec.Label,
			Group: spec.Group,
			Valor: "0.00",
			Var:   "0.00",
		}
		if e, ok := raw[key(spec.Pair)]; ok {
			if bid, err := decimal.NewFromString(e.Bid); err == nil {
				values[spec.Pair] = bid
				row.Valor = bid.StringFixed(2)
				row.Var = market.MoneyString(e.PctChange)
			}
		}
		rates = append(rates, row)
	}

	for _, spec := range market.DerivedPairs {
		row := market.ExchangeRate{
			Pair:    spec.Pair,
			Label:   spec.Label,
			Group:   spec.Group,
			Valor:   "0.00",
			Var:     "0.00",
			Derived: true,
		}
		num, okNum := values[spec.Num]
		switch {
		case spec.Den == "":
			if okNum && !num.IsZero() {
				row.Valor = decimal.NewFromInt(1).Div(num).StringFixed(2)
			}
		default:
			den, okDen := values[spec.Den]
			if okNum && okDen && !den.IsZero() {
				row.Valor = num.Div(den).StringFixed(2)
			}
		}
		rates = append(rates, row)
	}

	return market.ExchangeTable{
		Rates:     rates,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
