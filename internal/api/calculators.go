package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jhconzatti/julishub/internal/finance"
)

// CalculatorsController exposes the three financial calculators.
type CalculatorsController struct {
	log *logrus.Entry
}

func NewCalculatorsController(log *logrus.Entry) *CalculatorsController {
	return &CalculatorsController{log: log}
}

func (c *CalculatorsController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/juros-compostos", c.jurosCompostos)
	api.POST("/financiamento", c.financiamento)
	api.POST("/salario-liquido", c.salarioLiquido)
}

func (c *CalculatorsController) jurosCompostos(ctx *gin.Context) {
	var in finance.CompoundInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "dados inválidos: " + err.Error()})
		return
	}

	res, err := finance.Compound(in)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (c *CalculatorsController) financiamento(ctx *gin.Context) {
	var in finance.LoanInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "dados inválidos: " + err.Error()})
		return
	}

	res, err := finance.Amortize(in)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (c *CalculatorsController) salarioLiquido(ctx *gin.Context) {
	var in finance.PayrollInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "dados inválidos: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, finance.NetSalary(in))
}
