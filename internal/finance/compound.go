package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// CompoundInput describes a monthly-compounded investment projection.
type CompoundInput struct {
	AporteInicial float64 `json:"aporte_inicial" binding:"min=0"`
	AporteMensal  float64 `json:"aporte_mensal" binding:"min=0"`
	TaxaAnual     float64 `json:"taxa_anual" binding:"min=0"`
	Anos          int     `json:"anos" binding:"required,min=1"`
}

// CompoundPoint is one yearly snapshot of the projection curve.
type CompoundPoint struct {
	Mes       int     `json:"mes"`
	Ano       int     `json:"ano"`
	Investido float64 `json:"investido"`
	Juros     float64 `json:"juros"`
	Total     float64 `json:"total"`
}

// CompoundSummary totals the projection at the final month.
type CompoundSummary struct {
	TotalInvestido float64 `json:"total_investido"`
	TotalJuros     float64 `json:"total_juros"`
	TotalFinal     float64 `json:"total_final"`
}

// CompoundResult carries the chart snapshots and the closing summary.
type CompoundResult struct {
	Grafico []CompoundPoint `json:"grafico"`
	Resumo  CompoundSummary `json:"resumo"`
}

// Compound projects a balance with an initial deposit and fixed monthly
// contributions at an annual rate, compounding monthly. The equivalent
// monthly rate is (1+annual)^(1/12)-1, so a 12% annual input yields less
// than 1% per month. Snapshots are emitted at month zero and at every
// twelfth month; in each snapshot Total equals Investido plus Juros as
// exact 2-decimal quantities.
func Compound(in CompoundInput) (CompoundResult, error) {
	if in.Anos < 0 || in.Anos > 50 {
		return CompoundResult{}, ErrDurationTooLong
	}

	monthly := math.Pow(1+in.TaxaAnual/100, 1.0/12) - 1
	months := in.Anos * 12

	saldo := in.AporteInicial
	investido := in.AporteInicial

	out := CompoundResult{Grafico: make([]CompoundPoint, 0, in.Anos+1)}
	out.Grafico = append(out.Grafico, snapshot(0, saldo, investido))

	for mes := 1; mes <= months; mes++ {
		saldo = saldo*(1+monthly) + in.AporteMensal
		investido += in.AporteMensal
		if mes%12 == 0 {
			out.Grafico = append(out.Grafico, snapshot(mes, saldo, investido))
		}
	}

	last := out.Grafico[len(out.Grafico)-1]
	out.Resumo = CompoundSummary{
		TotalInvestido: last.Investido,
		TotalJuros:     last.Juros,
		TotalFinal:     last.Total,
	}
	return out, nil
}

// snapshot derives Juros as Total-Investido after rounding both, so the
// three figures always reconcile at 2 decimal places.
func snapshot(mes int, saldo, investido float64) CompoundPoint {
	totalD := decimal.NewFromFloat(saldo).Round(2)
	invD := decimal.NewFromFloat(investido).Round(2)
	jurosD := totalD.Sub(invD)
	return CompoundPoint{
		Mes:       mes,
		Ano:       mes / 12,
		Investido: invD.InexactFloat64(),
		Juros:     jurosD.InexactFloat64(),
		Total:     totalD.InexactFloat64(),
	}
}
