package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jhconzatti/julishub/internal/blog"
	"github.com/jhconzatti/julishub/internal/news"
)

// ContentController serves the blog catalogue and the news feed.
type ContentController struct {
	blog *blog.Store
	news *news.Service
	log  *logrus.Entry
}

func NewContentController(b *blog.Store, n *news.Service, log *logrus.Entry) *ContentController {
	return &ContentController{blog: b, news: n, log: log}
}

func (c *ContentController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/blog", c.listArticles)
	api.GET("/blog/:slug", c.getArticle)
	api.GET("/noticias", c.noticias)
}

func (c *ContentController) listArticles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.blog.List())
}

func (c *ContentController) getArticle(ctx *gin.Context) {
	slug := ctx.Param("slug")
	art, err := c.blog.Get(slug)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "artigo '" + slug + "' não encontrado"})
			return
		}
		c.log.WithError(err).Error("blog lookup failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao carregar artigo"})
		return
	}
	ctx.JSON(http.StatusOK, art)
}

func (c *ContentController) noticias(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.news.Latest(ctx.Request.Context()))
}
