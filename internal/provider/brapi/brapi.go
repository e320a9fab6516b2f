// Package brapi is the client for the brapi.dev aggregator. It is the
// only free source covering B3 index quotes, and doubles as the secondary
// provider for spot quotes and macro indicators when the primaries fail.
package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jhconzatti/julishub/internal/httpx"
	"github.com/jhconzatti/julishub/internal/market"
)

type Config struct {
	Name     string
	Endpoint string
	// Token is the optional brapi API token, sent as a query parameter.
	Token string
}

type Client struct {
	cfg  Config
	http *httpx.Client
	log  *logrus.Entry
}

func New(cfg Config, hc *httpx.Client, log *logrus.Entry) *Client {
	if cfg.Name == "" {
		cfg.Name = "Brapi"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://brapi.dev"
	}
	return &Client{cfg: cfg, http: hc, log: log}
}

func (c *Client) Name() string { return c.cfg.Name }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.cfg.Token != "" {
		query.Set("token", c.cfg.Token)
	}
	u := strings.TrimSuffix(c.cfg.Endpoint, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
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
		return fmt.Errorf("GET %s -> %d: %s", u, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	c.log.WithField("path", path).Debug("fetched")
	return nil
}

type quoteResult struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
}

type quoteResponse struct {
	Results []quoteResult `json:"results"`
}

func (c *Client) quote(ctx context.Context, tickers string) ([]quoteResult, error) {
	var raw quoteResponse
	if err := c.get(ctx, "/api/quote/"+url.PathEscape(tickers), url.Values{}, &raw); err != nil {
		return nil, err
	}
	if len(raw.Results) == 0 {
		return nil, fmt.Errorf("quote %s: empty results", tickers)
	}
	return raw.Results, nil
}

// IndexQuote fetches the IBOVESPA snapshot. Used both directly and as the
// supplementary fill for the cotacao payload.
func (c *Client) IndexQuote(ctx context.Context) (market.Quote, error) {
	results, err := c.quote(ctx, "^BVSP")
	if err != nil {
		return market.Quote{}, err
	}
	r := results[0]
	return market.Quote{
		Valor: market.Money(r.RegularMarketPrice),
		Var:   market.Money(r.RegularMarketChangePercent),
	}, nil
}

// brazilTickers maps B3 index tickers onto board rows.
var brazilTickers = []struct {
	ticker      string
	name        string
	label       string
	description string
}{
	{"^BVSP", "IBOV", "Ibovespa", "Principal índice da B3"},
	{"IFIX", "IFIX", "IFIX", "Índice de fundos imobiliários da B3"},
}

// BrazilBoard fetches the live B3 index board. Tickers missing from the
// response become zero rows; an empty response is a provider failure.
func (c *Client) BrazilBoard(ctx context.Context) (market.IndexBoard, error) {
	tickers := make([]string, len(brazilTickers))
	for i, t := range brazilTickers {
		tickers[i] = t.ticker
	}
	results, err := c.quote(ctx, strings.Join(tickers, ","))
	if err != nil {
		return market.IndexBoard{}, err
	}
	bySymbol := make(map[string]quoteResult, len(results))
	for _, r := range results {
		bySymbol[r.Symbol] = r
	}

	board := market.IndexBoard{Indexes: make([]market.Index, 0, len(brazilTickers))}
	for _, t := range brazilTickers {
		row := market.Index{
			Name:        t.name,
			Label:       t.label,
			Valor:       "0.00",
			Var:         "0.00",
			Description: t.description,
		}
		if r, ok := bySymbol[t.ticker]; ok {
			row.Valor = market.Money(r.RegularMarketPrice)
			row.Var = market.Money(r.RegularMarketChangePercent)
		}
		board.Indexes = append(board.Indexes, row)
	}
	return board, nil
}

type currencyEntry struct {
	FromCurrency     string `json:"fromCurrency"`
	ToCurrency       string `json:"toCurrency"`
	BidPrice         string `json:"bidPrice"`
	PercentageChange string `json:"percentageChange"`
}

type currencyResponse struct {
	Currency []currencyEntry `json:"currency"`
}

// Cotacao builds the spot-quote payload from the v2 currency endpoint.
// The Ibovespa sub-field is left for the orchestrator's supplementary fill
// so the merge rule stays in one place.
func (c *Client) Cotacao(ctx context.Context) (market.Cotacao, error) {
	var raw currencyResponse
	q := url.Values{"currency": []string{"USD-BRL,BTC-USD"}}
	if err := c.get(ctx, "/api/v2/currency", q, &raw); err != nil {
		return market.Cotacao{}, err
	}
	byPair := make(map[string]currencyEntry, len(raw.Currency))
	for _, e := range raw.Currency {
		byPair[e.FromCurrency+"-"+e.ToCurrency] = e
	}
	usd, okUSD := byPair["USD-BRL"]
	btc, okBTC := byPair["BTC-USD"]
	if !okUSD || !okBTC {
		return market.Cotacao{}, fmt.Errorf("currency: incomplete body (usd=%v btc=%v)", okUSD, okBTC)
	}
	return market.Cotacao{
		Dolar:   market.Quote{Valor: market.MoneyString(usd.BidPrice), Var: market.MoneyString(usd.PercentageChange)},
		Bitcoin: market.Quote{Valor: market.MoneyString(btc.BidPrice), Var: market.MoneyString(btc.PercentageChange)},
	}, nil
}

type ratePoint struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type primeRateResponse struct {
	PrimeRate []ratePoint `json:"prime-rate"`
}

type inflationResponse struct {
	Inflation []ratePoint `json:"inflation"`
}

// Indicadores is the secondary macro-indicator source: prime rate stands
// in for the Selic target and the inflation series for the 12-month IPCA.
// CDI stays derived, never fetched.
func (c *Client) Indicadores(ctx context.Context) (market.Indicadores, error) {
	var prime primeRateResponse
	errPrime := c.get(ctx, "/api/v2/prime-rate", url.Values{"country": []string{"brazil"}}, &prime)
	if errPrime == nil && len(prime.PrimeRate) == 0 {
		errPrime = fmt.Errorf("prime-rate: empty series")
	}

	var infl inflationResponse
	errInfl := c.get(ctx, "/api/v2/inflation", url.Values{"country": []string{"brazil"}}, &infl)
	if errInfl == nil && len(infl.Inflation) == 0 {
		errInfl = fmt.Errorf("inflation: empty series")
	}

	if errPrime != nil && errInfl != nil {
		return market.Indicadores{}, fmt.Errorf("all series failed: %v; %v", errPrime, errInfl)
	}

	out := market.Indicadores{
		Selic: market.Indicator{Valor: "0.00", Descricao: "Taxa básica de juros da economia"},
		Ipca:  market.Indicator{Valor: "0.00", Descricao: "Inflação acumulada em 12 meses"},
		Cdi:   market.Indicator{Valor: "0.00", Descricao: "Estimativa baseada na taxa Selic"},
	}
	if errPrime == nil {
		p := prime.PrimeRate[0]
		out.Selic.Valor = market.MoneyString(p.Value)
		out.Selic.Data = p.Date
		if rate, err := strconv.ParseFloat(p.Value, 64); err == nil {
			out.Cdi.Valor = market.Money(rate - market.CdiSpread)
			out.Cdi.Data = p.Date
		}
	}
	if errInfl == nil {
		p := infl.Inflation[0]
		out.Ipca.Valor = market.MoneyString(p.Value)
		out.Ipca.Data = p.Date
	}
	return out, nil
}
