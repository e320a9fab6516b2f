package brapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jhconzatti/julishub/internal/httpx"
	"github.com/jhconzatti/julishub/internal/provider/brapi"
)

func testEntry() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log.WithField("component", "test")
}

func newClient(endpoint, token string) *brapi.Client {
	return brapi.New(brapi.Config{Endpoint: endpoint, Token: token}, httpx.New(2*time.Second), testEntry())
}

func TestIndexQuote_FormatsPriceAndChange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Path, "/api/quote/")
		require.Equal(t, "s3cret", r.URL.Query().Get("token"))
		io.WriteString(w, `{"results": [
			{"symbol": "^BVSP", "shortName": "IBOVESPA", "regularMarketPrice": 129876.345, "regularMarketChangePercent": 0.964}
		]}`)
	}))
	defer srv.Close()

	got, err := newClient(srv.URL, "s3cret").IndexQuote(context.Background())
	require.NoError(t, err)
	require.Equal(t, "129876.35", got.Valor)
	require.Equal(t, "0.96", got.Var)
}

func TestBrazilBoard_MissingTickerZeroRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"results": [
			{"symbol": "^BVSP", "regularMarketPrice": 129876.34, "regularMarketChangePercent": 0.96}
		]}`)
	}))
	defer srv.Close()

	got, err := newClient(srv.URL, "").BrazilBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Indexes, 2)
	require.Equal(t, "129876.34", got.Indexes[0].Valor)
	// IFIX absent upstream: present in the board, zero-valued.
	require.Equal(t, "IFIX", got.Indexes[1].Name)
	require.Equal(t, "0.00", got.Indexes[1].Valor)
	require.Equal(t, "0.00", got.Indexes[1].Var)
}

func TestBrazilBoard_EmptyResultsIsAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"results": []}`)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").BrazilBoard(context.Background())
	require.Error(t, err)
}

func TestCotacao_NormalizesCurrencyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/currency", r.URL.Path)
		require.Equal(t, "USD-BRL,BTC-USD", r.URL.Query().Get("currency"))
		io.WriteString(w, `{"currency": [
			{"fromCurrency": "USD", "toCurrency": "BRL", "bidPrice": "5.4391", "percentageChange": "0.21"},
			{"fromCurrency": "BTC", "toCurrency": "USD", "bidPrice": "64890.1", "percentageChange": "-0.8"}
		]}`)
	}))
	defer srv.Close()

	got, err := newClient(srv.URL, "").Cotacao(context.Background())
	require.NoError(t, err)
	require.Equal(t, "5.44", got.Dolar.Valor)
	require.Equal(t, "0.21", got.Dolar.Var)
	require.Equal(t, "64890.10", got.Bitcoin.Valor)
	require.Equal(t, "-0.80", got.Bitcoin.Var)
	require.Empty(t, got.Ibovespa.Valor, "index fill belongs to the orchestrator")
}

func TestIndicadores_PrimeRateAndInflation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/v2/prime-rate"):
			io.WriteString(w, `{"prime-rate": [{"date": "27/08/2026", "value": "11.25"}]}`)
		case strings.HasPrefix(r.URL.Path, "/api/v2/inflation"):
			io.WriteString(w, `{"inflation": [{"date": "15/08/2026", "value": "4.35"}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	got, err := newClient(srv.URL, "").Indicadores(context.Background())
	require.NoError(t, err)
	require.Equal(t, "11.25", got.Selic.Valor)
	require.Equal(t, "4.35", got.Ipca.Valor)
	require.Equal(t, "11.15", got.Cdi.Valor)
}

func TestIndicadores_BothSeriesDown_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").Indicadores(context.Background())
	require.Error(t, err)
}
