package finance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhconzatti/julishub/internal/finance"
)

func TestNetSalaryFirstBracket(t *testing.T) {
	res := finance.NetSalary(finance.PayrollInput{SalarioBruto: 1412.00})

	require.Equal(t, 105.90, res.Inss)
	require.Equal(t, 0.00, res.Irrf)
	require.Equal(t, 105.90, res.TotalDescontos)
	require.Equal(t, 1306.10, res.SalarioLiquido)
}

func TestNetSalaryMiddleBrackets(t *testing.T) {
	res := finance.NetSalary(finance.PayrollInput{SalarioBruto: 3000.00})

	require.Equal(t, 258.82, res.Inss)
	require.Equal(t, 36.15, res.Irrf)
	require.Equal(t, 294.97, res.TotalDescontos)
	require.Equal(t, 2705.03, res.SalarioLiquido)
}

func TestNetSalaryDependentsAndExtraDeductions(t *testing.T) {
	res := finance.NetSalary(finance.PayrollInput{
		SalarioBruto:    10000.00,
		Dependentes:     2,
		OutrosDescontos: 150.00,
	})

	require.Equal(t, 908.86, res.Inss)
	require.Equal(t, 1499.79, res.Irrf)
	require.Equal(t, 150.00, res.OutrosDescontos)
	require.Equal(t, 2558.65, res.TotalDescontos)
	require.Equal(t, 7441.35, res.SalarioLiquido)
}

func TestNetSalaryInssCappedAtCeiling(t *testing.T) {
	atCeiling := finance.NetSalary(finance.PayrollInput{SalarioBruto: 7786.02})
	wellAbove := finance.NetSalary(finance.PayrollInput{SalarioBruto: 20000.00})

	require.Equal(t, 908.86, atCeiling.Inss)
	require.Equal(t, atCeiling.Inss, wellAbove.Inss)
}

func TestNetSalaryIrrfNeverNegative(t *testing.T) {
	// Dependent allowances can push the taxable base below zero.
	for _, gross := range []float64{1000, 2300, 2500, 2826.65, 3500, 5000} {
		res := finance.NetSalary(finance.PayrollInput{SalarioBruto: gross, Dependentes: 10})
		require.GreaterOrEqual(t, res.Irrf, 0.00, "gross %v", gross)
	}
}
