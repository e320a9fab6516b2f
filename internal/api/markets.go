package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jhconzatti/julishub/internal/market"
)

// MarketsController exposes the market-data read endpoints.
type MarketsController struct {
	svc *market.Service
	log *logrus.Entry
}

func NewMarketsController(svc *market.Service, log *logrus.Entry) *MarketsController {
	return &MarketsController{svc: svc, log: log}
}

func (c *MarketsController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/cotacao", c.cotacao)
	api.GET("/historico/:moeda", c.historico)
	api.GET("/indicadores", c.indicadores)
	api.GET("/exchange-rates", c.exchangeRates)
	api.GET("/indexes/brazil", c.indexesBrazil)
	api.GET("/indexes/argentina", c.indexesArgentina)
	api.GET("/indexes/usa", c.indexesUSA)
}

func (c *MarketsController) cotacao(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.svc.Cotacao(ctx.Request.Context()))
}

func (c *MarketsController) historico(ctx *gin.Context) {
	moeda := ctx.Param("moeda")
	points, err := c.svc.History(ctx.Request.Context(), moeda)
	if err != nil {
		if errors.Is(err, market.ErrUnsupportedInstrument) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "moeda não suportada: " + moeda})
			return
		}
		c.log.WithError(err).WithField("moeda", moeda).Error("historico failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao carregar histórico"})
		return
	}
	ctx.JSON(http.StatusOK, points)
}

func (c *MarketsController) indicadores(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.svc.Indicadores(ctx.Request.Context()))
}

func (c *MarketsController) exchangeRates(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.svc.ExchangeRates(ctx.Request.Context()))
}

func (c *MarketsController) indexesBrazil(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.svc.BrazilIndexes(ctx.Request.Context()))
}

func (c *MarketsController) indexesArgentina(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.svc.ArgentinaIndexes())
}

func (c *MarketsController) indexesUSA(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.svc.USAIndexes())
}
