package finance

import "math"

// 2024 CLT tables.
var inssBrackets = []struct {
	limit float64
	rate  float64
}{
	{1412.00, 0.075},
	{2666.68, 0.09},
	{4000.03, 0.12},
	{7786.02, 0.14},
}

const inssCeiling = 7786.02

var irrfBrackets = []struct {
	limit   float64
	rate    float64
	deducao float64
}{
	{2259.20, 0, 0},
	{2826.65, 0.075, 169.44},
	{3751.05, 0.15, 381.44},
	{4664.68, 0.225, 662.77},
	{math.MaxFloat64, 0.275, 896.00},
}

const deducaoPorDependente = 189.59

// PayrollInput describes a gross CLT salary to be netted.
type PayrollInput struct {
	SalarioBruto    float64 `json:"salario_bruto" binding:"required,gt=0"`
	Dependentes     int     `json:"dependentes" binding:"min=0"`
	OutrosDescontos float64 `json:"outros_descontos" binding:"min=0"`
}

// PayrollResult breaks the gross salary into its statutory deductions.
type PayrollResult struct {
	SalarioBruto    float64 `json:"salario_bruto"`
	Inss            float64 `json:"inss"`
	Irrf            float64 `json:"irrf"`
	OutrosDescontos float64 `json:"outros_descontos"`
	TotalDescontos  float64 `json:"total_descontos"`
	SalarioLiquido  float64 `json:"salario_liquido"`
}

// NetSalary applies the progressive INSS table, then IRRF on the base
// net of INSS and the per-dependent allowance, then any extra
// deductions informed by the caller.
func NetSalary(in PayrollInput) PayrollResult {
	inss := computeINSS(in.SalarioBruto)
	irrf := computeIRRF(in.SalarioBruto - inss - float64(in.Dependentes)*deducaoPorDependente)

	total := round2(inss + irrf + in.OutrosDescontos)
	return PayrollResult{
		SalarioBruto:    round2(in.SalarioBruto),
		Inss:            round2(inss),
		Irrf:            round2(irrf),
		OutrosDescontos: round2(in.OutrosDescontos),
		TotalDescontos:  total,
		SalarioLiquido:  round2(in.SalarioBruto - total),
	}
}

// computeINSS taxes each bracket slice at its own rate, capped at the
// contribution ceiling.
func computeINSS(gross float64) float64 {
	base := math.Min(gross, inssCeiling)
	var contrib, prev float64
	for _, b := range inssBrackets {
		if base <= prev {
			break
		}
		contrib += (math.Min(base, b.limit) - prev) * b.rate
		prev = b.limit
	}
	return contrib
}

// computeIRRF applies the single bracket matching the taxable base and
// subtracts that bracket's standard deduction. Never negative.
func computeIRRF(base float64) float64 {
	for _, b := range irrfBrackets {
		if base <= b.limit {
			return math.Max(0, base*b.rate-b.deducao)
		}
	}
	return 0
}
