package finance

import (
	"fmt"
	"math"
)

// LoanInput describes a fixed-installment financing simulation.
type LoanInput struct {
	ValorFinanciamento float64 `json:"valor_financiamento" binding:"required,gt=0"`
	TaxaMensal         float64 `json:"taxa_mensal" binding:"min=0"`
	Meses              int     `json:"meses" binding:"required,min=1"`
}

// LoanResult carries the Price-table installment and the loan totals.
type LoanResult struct {
	ValorPrestacao float64 `json:"valor_prestacao"`
	TotalPago      float64 `json:"total_pago"`
	TotalJuros     float64 `json:"total_juros"`
	ResumoTexto    string  `json:"resumo_texto"`
}

// Amortize computes the fixed installment of a loan by the Price system:
// PMT = PV * i * (1+i)^n / ((1+i)^n - 1). A zero rate degenerates to a
// straight split of the principal over the term.
func Amortize(in LoanInput) (LoanResult, error) {
	if in.Meses <= 0 {
		return LoanResult{}, ErrInvalidPeriods
	}

	var pmt float64
	if in.TaxaMensal == 0 {
		pmt = in.ValorFinanciamento / float64(in.Meses)
	} else {
		i := in.TaxaMensal / 100
		factor := math.Pow(1+i, float64(in.Meses))
		pmt = in.ValorFinanciamento * i * factor / (factor - 1)
	}

	prestacao := round2(pmt)
	totalPago := round2(pmt * float64(in.Meses))
	return LoanResult{
		ValorPrestacao: prestacao,
		TotalPago:      totalPago,
		TotalJuros:     round2(totalPago - round2(in.ValorFinanciamento)),
		ResumoTexto: fmt.Sprintf("Em %d meses, você pagará %d parcelas fixas de R$ %.2f.",
			in.Meses, in.Meses, prestacao),
	}, nil
}
