package market

// historyPairs maps the instrument names the frontend asks for onto
// upstream pair codes.
var historyPairs = map[string]string{
	"dolar":   "USD-BRL",
	"bitcoin": "BTC-USD",
}

// HistoryPair resolves an instrument name to its upstream pair code.
func HistoryPair(instrument string) (string, bool) {
	pair, ok := historyPairs[instrument]
	return pair, ok
}

// PairSpec declares one fetched row of the exchange-rate table.
type PairSpec struct {
	Pair  string
	Label string
	Group string
}

// DerivedSpec declares one computed row. When Den is empty the value is
// the algebraic inverse of Num; otherwise it is the ratio Num/Den over
// the fetched values. Derived rows carry zero variance.
type DerivedSpec struct {
	Pair  string
	Label string
	Group string
	Num   string
	Den   string
}

const (
	GroupAmericas = "Américas"
	GroupEuropa   = "Europa"
	GroupAsia     = "Ásia & Pacífico"
	GroupAfrica   = "África & Oriente Médio"
	GroupCripto   = "Criptomoedas"
	GroupCruzadas = "Taxas Cruzadas"
)

// FetchedPairs is the fixed set of pairs requested from the quote provider
// in a single batch call.
var FetchedPairs = []PairSpec{
	{Pair: "USD-BRL", Label: "Dólar Americano", Group: GroupAmericas},
	{Pair: "CAD-BRL", Label: "Dólar Canadense", Group: GroupAmericas},
	{Pair: "MXN-BRL", Label: "Peso Mexicano", Group: GroupAmericas},
	{Pair: "ARS-BRL", Label: "Peso Argentino", Group: GroupAmericas},
	{Pair: "CLP-BRL", Label: "Peso Chileno", Group: GroupAmericas},
	{Pair: "COP-BRL", Label: "Peso Colombiano", Group: GroupAmericas},
	{Pair: "PEN-BRL", Label: "Sol Peruano", Group: GroupAmericas},
	{Pair: "UYU-BRL", Label: "Peso Uruguaio", Group: GroupAmericas},
	{Pair: "PYG-BRL", Label: "Guarani Paraguaio", Group: GroupAmericas},

	{Pair: "EUR-BRL", Label: "Euro", Group: GroupEuropa},
	{Pair: "GBP-BRL", Label: "Libra Esterlina", Group: GroupEuropa},
	{Pair: "CHF-BRL", Label: "Franco Suíço", Group: GroupEuropa},
	{Pair: "SEK-BRL", Label: "Coroa Sueca", Group: GroupEuropa},
	{Pair: "NOK-BRL", Label: "Coroa Norueguesa", Group: GroupEuropa},
	{Pair: "DKK-BRL", Label: "Coroa Dinamarquesa", Group: GroupEuropa},
	{Pair: "PLN-BRL", Label: "Zlóti Polonês", Group: GroupEuropa},
	{Pair: "CZK-BRL", Label: "Coroa Tcheca", Group: GroupEuropa},
	{Pair: "HUF-BRL", Label: "Florim Húngaro", Group: GroupEuropa},
	{Pair: "RUB-BRL", Label: "Rublo Russo", Group: GroupEuropa},

	{Pair: "JPY-BRL", Label: "Iene Japonês", Group: GroupAsia},
	{Pair: "CNY-BRL", Label: "Yuan Chinês", Group: GroupAsia},
	{Pair: "HKD-BRL", Label: "Dólar de Hong Kong", Group: GroupAsia},
	{Pair: "SGD-BRL", Label: "Dólar de Singapura", Group: GroupAsia},
	{Pair: "KRW-BRL", Label: "Won Sul-Coreano", Group: GroupAsia},
	{Pair: "INR-BRL", Label: "Rúpia Indiana", Group: GroupAsia},
	{Pair: "AUD-BRL", Label: "Dólar Australiano", Group: GroupAsia},
	{Pair: "NZD-BRL", Label: "Dólar Neozelandês", Group: GroupAsia},

	{Pair: "ZAR-BRL", Label: "Rand Sul-Africano", Group: GroupAfrica},
	{Pair: "TRY-BRL", Label: "Lira Turca", Group: GroupAfrica},

	{Pair: "BTC-BRL", Label: "Bitcoin", Group: GroupCripto},
	{Pair: "ETH-BRL", Label: "Ethereum", Group: GroupCripto},
	{Pair: "LTC-BRL", Label: "Litecoin", Group: GroupCripto},
	{Pair: "XRP-BRL", Label: "XRP", Group: GroupCripto},
	{Pair: "DOGE-BRL", Label: "Dogecoin", Group: GroupCripto},
}

// DerivedPairs are computed from FetchedPairs, never fetched directly.
var DerivedPairs = []DerivedSpec{
	{Pair: "BRL-USD", Label: "Real em Dólar", Group: GroupCruzadas, Num: "USD-BRL"},
	{Pair: "EUR-USD", Label: "Euro em Dólar", Group: GroupCruzadas, Num: "EUR-BRL", Den: "USD-BRL"},
	{Pair: "GBP-USD", Label: "Libra em Dólar", Group: GroupCruzadas, Num: "GBP-BRL", Den: "USD-BRL"},
	{Pair: "BTC-USD", Label: "Bitcoin em Dólar", Group: GroupCruzadas, Num: "BTC-BRL", Den: "USD-BRL"},
}

// FetchedPairCodes returns the pair codes for the provider's batch request.
func FetchedPairCodes() []string {
	out := make([]string, len(FetchedPairs))
	for i, p := range FetchedPairs {
		out[i] = p.Pair
	}
	return out
}

// StaticArgentinaBoard and StaticUSABoard are placeholder snapshots. The
// free data sources covered here do not serve Buenos Aires or US index
// quotes, so these regions are intentionally not live-fetched.
func StaticArgentinaBoard() IndexBoard {
	return IndexBoard{Indexes: []Index{
		{Name: "MERVAL", Label: "S&P Merval", Valor: "1856234.00", Var: "1.25", Description: "Principal índice da bolsa de Buenos Aires (valor de referência)"},
	}}
}

func StaticUSABoard() IndexBoard {
	return IndexBoard{Indexes: []Index{
		{Name: "SPX", Label: "S&P 500", Valor: "5234.18", Var: "0.88", Description: "500 maiores empresas listadas nos EUA (valor de referência)"},
		{Name: "IXIC", Label: "NASDAQ", Valor: "16789.45", Var: "0.74", Description: "Índice das empresas de tecnologia (valor de referência)"},
		{Name: "DJI", Label: "Dow Jones", Valor: "38456.78", Var: "-0.23", Description: "30 grandes companhias industriais (valor de referência)"},
	}}
}
