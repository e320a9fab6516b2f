// Package bcb is the client for the Banco Central do Brasil SGS series
// API, the primary provider for macro indicators.
package bcb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jhconzatti/julishub/internal/httpx"
	"github.com/jhconzatti/julishub/internal/market"
)

// SGS series codes for the tracked indicators.
const (
	serieSelicMeta = 432   // Selic target rate set by COPOM
	serieIPCA12m   = 13522 // IPCA accumulated over 12 months
)

type Config struct {
	Name     string
	Endpoint string
}

type Client struct {
	cfg  Config
	http *httpx.Client
	log  *logrus.Entry
}

func New(cfg Config, hc *httpx.Client, log *logrus.Entry) *Client {
	if cfg.Name == "" {
		cfg.Name = "BancoCentral"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.bcb.gov.br"
	}
	return &Client{cfg: cfg, http: hc, log: log}
}

func (c *Client) Name() string { return c.cfg.Name }

// seriesPoint is one observation of an SGS series.
type seriesPoint struct {
	Data  string `json:"data"`
	Valor string `json:"valor"`
}

// latest fetches the most recent observation of one series.
func (c *Client) latest(ctx context.Context, serie int) (seriesPoint, error) {
	url := fmt.Sprintf("%s/dados/serie/bcdata.sgs.%d/dados/ultimos/1?formato=json",
		strings.TrimSuffix(c.cfg.Endpoint, "/"), serie)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return seriesPoint{}, err
	}
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return seriesPoint{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return seriesPoint{}, fmt.Errorf("GET %s -> %d: %s", url, resp.StatusCode, string(b))
	}
	var raw []seriesPoint
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return seriesPoint{}, fmt.Errorf("decode sgs.%d: %w", serie, err)
	}
	if len(raw) == 0 {
		return seriesPoint{}, fmt.Errorf("sgs.%d: empty series", serie)
	}
	c.log.WithField("serie", serie).Debug("fetched")
	return raw[len(raw)-1], nil
}

// Indicadores fetches the Selic target and the 12-month IPCA and derives
// the CDI estimate as Selic minus the fixed spread. A single series
// failing fails the whole call: a partial payload would be cached for the
// full validity window, while a provider failure lets the orchestrator
// try the next source in the chain.
func (c *Client) Indicadores(ctx context.Context) (market.Indicadores, error) {
	var selic, ipca seriesPoint

	// The two series are independent, fetch them in parallel.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		selic, err = c.latest(gctx, serieSelicMeta)
		return err
	})
	g.Go(func() error {
		var err error
		ipca, err = c.latest(gctx, serieIPCA12m)
		return err
	})
	if err := g.Wait(); err != nil {
		return market.Indicadores{}, fmt.Errorf("sgs series: %w", err)
	}

	out := market.Indicadores{
		Selic: market.Indicator{Valor: market.MoneyString(selic.Valor), Data: selic.Data, Descricao: "Taxa básica de juros da economia"},
		Ipca:  market.Indicator{Valor: market.MoneyString(ipca.Valor), Data: ipca.Data, Descricao: "Inflação acumulada em 12 meses"},
		Cdi:   market.Indicator{Valor: "0.00", Descricao: "Estimativa baseada na taxa Selic"},
	}
	if rate, err := strconv.ParseFloat(selic.Valor, 64); err == nil {
		out.Cdi.Valor = market.Money(rate - market.CdiSpread)
		out.Cdi.Data = selic.Data
	}
	return out, nil
}
