package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jhconzatti/julishub/internal/api"
	"github.com/jhconzatti/julishub/internal/blog"
	"github.com/jhconzatti/julishub/internal/finance"
	"github.com/jhconzatti/julishub/internal/market"
	"github.com/jhconzatti/julishub/internal/market/cache"
	"github.com/jhconzatti/julishub/internal/news"
)

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(log)
}

type stubHistory struct{}

func (stubHistory) Name() string { return "stub" }

func (stubHistory) History(ctx context.Context, pair string, days int) ([]market.HistoryPoint, error) {
	return []market.HistoryPoint{{Data: "27/08", Valor: 5.40}, {Data: "28/08", Valor: 5.43}}, nil
}

type stubFeed struct {
	items []news.Item
	err   error
}

func (f stubFeed) Fetch(ctx context.Context) ([]news.Item, error) { return f.items, f.err }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	log := testLogger()
	c := cache.New(time.Hour, nil)

	chains := market.Chains{
		Cotacao: []market.Source[market.Cotacao]{{
			Name: "stub",
			Fetch: func(ctx context.Context) (market.Cotacao, error) {
				return market.Cotacao{
					Dolar:   market.Quote{Valor: "5.43", Var: "0.12"},
					Bitcoin: market.Quote{Valor: "350000.00", Var: "-1.20"},
				}, nil
			},
		}},
		CotacaoIndex: func(ctx context.Context) (market.Quote, error) {
			return market.Quote{Valor: "134000.00", Var: "0.45"}, nil
		},
		Indicadores: []market.Source[market.Indicadores]{{
			Name: "stub",
			Fetch: func(ctx context.Context) (market.Indicadores, error) {
				return market.Indicadores{}, errors.New("down")
			},
		}},
		Exchange: []market.Source[market.ExchangeTable]{{
			Name: "stub",
			Fetch: func(ctx context.Context) (market.ExchangeTable, error) {
				return market.ExchangeTable{
					Rates:     []market.ExchangeRate{{Pair: "USD-BRL", Valor: "5.43", Var: "0.12"}},
					UpdatedAt: "2026-08-28T12:00:00Z",
				}, nil
			},
		}},
		BrazilBoard: []market.Source[market.IndexBoard]{{
			Name: "stub",
			Fetch: func(ctx context.Context) (market.IndexBoard, error) {
				return market.IndexBoard{Indexes: []market.Index{{Name: "IBOV", Valor: "134000.00"}}}, nil
			},
		}},
		History: []market.HistorySource{stubHistory{}},
	}
	svc := market.NewService(c, log, chains)

	feed := stubFeed{items: []news.Item{{Titulo: "Selic em pauta", Fonte: "G1"}}}
	newsSvc := news.NewService(feed, c, log)

	srv := api.NewServer(api.ServerConfig{Host: "127.0.0.1", Port: "0"}, log)
	srv.AddController(
		api.NewMarketsController(svc, log),
		api.NewCalculatorsController(log),
		api.NewContentController(blog.NewStore(), newsSvc, log),
	)
	return srv.Router()
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootBanner(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message": "JulisHub API is running!"}`, w.Body.String())
}

func TestCotacaoEndpoint(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodGet, "/api/cotacao", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got market.Cotacao
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "5.43", got.Dolar.Valor)
	// The supplementary index call fills the missing Ibovespa field.
	require.Equal(t, "134000.00", got.Ibovespa.Valor)
}

func TestHistoricoEndpoint(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodGet, "/api/historico/dolar", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got []market.HistoryPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "27/08", got[0].Data)
}

func TestHistoricoUnknownInstrument(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodGet, "/api/historico/ouro", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "ouro")
}

func TestIndicadoresDegraded(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodGet, "/api/indicadores", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got market.Indicadores
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "0.00", got.Selic.Valor)
	require.NotEmpty(t, got.Erro)
}

func TestExchangeRatesEndpoint(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodGet, "/api/exchange-rates", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got market.ExchangeTable
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Rates, 1)
	require.Equal(t, "USD-BRL", got.Rates[0].Pair)
}

func TestIndexBoardEndpoints(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/indexes/brazil", "/api/indexes/argentina", "/api/indexes/usa"} {
		w := doRequest(t, r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)

		var got market.IndexBoard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotEmpty(t, got.Indexes, path)
	}
}

func TestJurosCompostosEndpoint(t *testing.T) {
	body := `{"aporte_inicial": 1000, "aporte_mensal": 100, "taxa_anual": 12, "anos": 1}`
	w := doRequest(t, newTestRouter(t), http.MethodPost, "/api/juros-compostos", body)

	require.Equal(t, http.StatusOK, w.Code)

	var got finance.CompoundResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Grafico, 2)
	require.Equal(t, 2200.00, got.Resumo.TotalInvestido)
}

// The frontend posts and reads snake_case field names; a renamed field
// would silently bind as zero on the way in, so pin the wire format.
func TestJurosCompostosWireFormat(t *testing.T) {
	body := `{"aporte_inicial": 1000, "aporte_mensal": 100, "taxa_anual": 12, "anos": 1}`
	w := doRequest(t, newTestRouter(t), http.MethodPost, "/api/juros-compostos", body)

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Contains(t, raw, "grafico")
	require.Contains(t, raw, "resumo")

	var resumo map[string]float64
	require.NoError(t, json.Unmarshal(raw["resumo"], &resumo))
	require.Contains(t, resumo, "total_investido")
	require.Contains(t, resumo, "total_juros")
	require.Contains(t, resumo, "total_final")
	// The aportes bound, so the projection is not the all-zero one a
	// misnamed field would produce.
	require.Equal(t, 2200.00, resumo["total_investido"])
}

func TestJurosCompostosRejectsLongDuration(t *testing.T) {
	body := `{"aporte_inicial": 1000, "taxa_anual": 12, "anos": 51}`
	w := doRequest(t, newTestRouter(t), http.MethodPost, "/api/juros-compostos", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinanciamentoEndpoint(t *testing.T) {
	body := `{"valor_financiamento": 10000, "taxa_mensal": 1, "meses": 12}`
	w := doRequest(t, newTestRouter(t), http.MethodPost, "/api/financiamento", body)

	require.Equal(t, http.StatusOK, w.Code)

	var got finance.LoanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, 888.49, got.ValorPrestacao)

	for _, key := range []string{"valor_prestacao", "total_pago", "total_juros", "resumo_texto"} {
		require.Contains(t, w.Body.String(), `"`+key+`"`)
	}
}

func TestFinanciamentoRejectsInvalidBody(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodPost, "/api/financiamento", `{"meses": 0}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalarioLiquidoEndpoint(t *testing.T) {
	body := `{"salario_bruto": 3000}`
	w := doRequest(t, newTestRouter(t), http.MethodPost, "/api/salario-liquido", body)

	require.Equal(t, http.StatusOK, w.Code)

	var got finance.PayrollResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, 258.82, got.Inss)
	require.Equal(t, 2705.03, got.SalarioLiquido)

	for _, key := range []string{"salario_bruto", "salario_liquido", "total_descontos", "outros_descontos"} {
		require.Contains(t, w.Body.String(), `"`+key+`"`)
	}
}

func TestBlogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	list := doRequest(t, r, http.MethodGet, "/api/blog", "")
	require.Equal(t, http.StatusOK, list.Code)

	var summaries []blog.Summary
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &summaries))
	require.Len(t, summaries, 3)
	require.NotContains(t, list.Body.String(), "conteudo")

	detail := doRequest(t, r, http.MethodGet, "/api/blog/reserva-de-emergencia", "")
	require.Equal(t, http.StatusOK, detail.Code)
	require.Contains(t, detail.Body.String(), "conteudo")

	missing := doRequest(t, r, http.MethodGet, "/api/blog/nao-existe", "")
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestNoticiasEndpoint(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodGet, "/api/noticias", "")

	require.Equal(t, http.StatusOK, w.Code)

	var items []news.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "Selic em pauta", items[0].Titulo)
}
