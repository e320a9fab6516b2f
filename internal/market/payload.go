package market

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Product identifies one cached data product (one cache slot each).
type Product string

const (
	ProductCotacao     Product = "cotacao"
	ProductIndicadores Product = "indicadores"
	ProductExchange    Product = "exchange-rates"
	ProductIndexBrazil Product = "indexes:brazil"
	ProductNoticias    Product = "noticias"
)

// HistoryProduct returns the cache slot for one instrument's 30-day history.
func HistoryProduct(instrument string) Product {
	return Product("historico:" + instrument)
}

// ErrUnsupportedInstrument is returned for history requests on instruments
// that have no upstream pair mapping.
var ErrUnsupportedInstrument = errors.New("unsupported instrument")

// Quote is the normalized snapshot for one instrument pair: last bid and
// percent change since prior close. Money fields are 2-decimal strings so
// a structurally naive consumer never sees a missing or null field.
type Quote struct {
	Valor string `json:"valor"`
	Var   string `json:"var"`
}

// Cotacao is the spot-quote payload served by /api/cotacao.
type Cotacao struct {
	Dolar    Quote `json:"dolar"`
	Bitcoin  Quote `json:"bitcoin"`
	Ibovespa Quote `json:"ibovespa"`
}

// HistoryPoint is one day of an instrument's closing history.
// Sequences are chronological ascending, at most 30 points.
type HistoryPoint struct {
	Data  string  `json:"data"`
	Valor float64 `json:"valor"`
}

// Indicator is one macro indicator: value formatted to 2 decimals, its
// reference date and a human description.
type Indicator struct {
	Valor     string `json:"valor"`
	Data      string `json:"data,omitempty"`
	Descricao string `json:"descricao"`
}

// Indicadores is the macro-indicator payload. CDI is always derived as
// Selic minus a fixed spread, never fetched. Erro carries a diagnostic
// message only when every upstream attempt failed.
type Indicadores struct {
	Selic Indicator `json:"selic"`
	Ipca  Indicator `json:"ipca"`
	Cdi   Indicator `json:"cdi"`
	Erro  string    `json:"erro,omitempty"`
}

// CdiSpread is subtracted from the Selic target to estimate CDI.
const CdiSpread = 0.10

// ExchangeRate is one row of the expanded exchange-rate table. Derived
// rows are computed from fetched rows (inverse or ratio) and carry a
// synthetic zero variance.
type ExchangeRate struct {
	Pair    string `json:"pair"`
	Label   string `json:"label"`
	Group   string `json:"group"`
	Valor   string `json:"valor"`
	Var     string `json:"var"`
	Derived bool   `json:"derived"`
}

// ExchangeTable is the payload served by /api/exchange-rates.
type ExchangeTable struct {
	Rates     []ExchangeRate `json:"rates"`
	UpdatedAt string         `json:"updated_at"`
}

// Index is one regional stock-index snapshot.
type Index struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Valor       string `json:"valor"`
	Var         string `json:"var"`
	Description string `json:"description"`
}

// IndexBoard is the payload served by /api/indexes/{region}.
type IndexBoard struct {
	Indexes []Index `json:"indexes"`
}

// Money formats v as a 2-decimal string with half-up rounding. All
// externally visible money fields go through here.
func Money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// MoneyString re-formats a provider's decimal string to 2 places,
// falling back to "0.00" when the input does not parse.
func MoneyString(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "0.00"
	}
	return d.Round(2).StringFixed(2)
}
