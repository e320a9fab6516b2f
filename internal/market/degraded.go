package market

// Degraded payloads are what callers receive when every provider in a
// product's chain failed. They are structurally identical to the live
// payloads (every field present, money fields zeroed, labels preserved)
// so the frontend never has to special-case an outage. They are pure
// values and are never written to the cache.

func DegradedQuote() Quote {
	return Quote{Valor: "0.00", Var: "0.00"}
}

func DegradedCotacao() Cotacao {
	return Cotacao{
		Dolar:    DegradedQuote(),
		Bitcoin:  DegradedQuote(),
		Ibovespa: DegradedQuote(),
	}
}

func DegradedHistory() []HistoryPoint {
	return []HistoryPoint{}
}

func DegradedIndicadores() Indicadores {
	return Indicadores{
		Selic: Indicator{Valor: "0.00", Descricao: "Taxa básica de juros da economia"},
		Ipca:  Indicator{Valor: "0.00", Descricao: "Inflação acumulada em 12 meses"},
		Cdi:   Indicator{Valor: "0.00", Descricao: "Estimativa baseada na taxa Selic"},
		Erro:  "Indicadores temporariamente indisponíveis",
	}
}

func DegradedExchangeTable() ExchangeTable {
	rates := make([]ExchangeRate, 0, len(FetchedPairs)+len(DerivedPairs))
	for _, p := range FetchedPairs {
		rates = append(rates, ExchangeRate{
			Pair:  p.Pair,
			Label: p.Label,
			Group: p.Group,
			Valor: "0.00",
			Var:   "0.00",
		})
	}
	for _, d := range DerivedPairs {
		rates = append(rates, ExchangeRate{
			Pair:    d.Pair,
			Label:   d.Label,
			Group:   d.Group,
			Valor:   "0.00",
			Var:     "0.00",
			Derived: true,
		})
	}
	return ExchangeTable{Rates: rates, UpdatedAt: ""}
}

func DegradedBrazilBoard() IndexBoard {
	return IndexBoard{Indexes: []Index{
		{Name: "IBOV", Label: "Ibovespa", Valor: "0.00", Var: "0.00", Description: "Principal índice da B3"},
		{Name: "IFIX", Label: "IFIX", Valor: "0.00", Var: "0.00", Description: "Índice de fundos imobiliários da B3"},
	}}
}
