// Package api is the HTTP surface. Controllers register their routes on
// a shared gin engine; the server owns middleware, CORS and shutdown.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller registers its routes on the router.
type Controller interface {
	RegisterRoutes(r *gin.Engine)
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Host string
	Port string
}

// Server assembles the gin engine from registered controllers and runs
// it until the context is cancelled.
type Server struct {
	cfg         ServerConfig
	log         *logrus.Entry
	controllers []Controller
	srv         *http.Server
}

func NewServer(cfg ServerConfig, log *logrus.Entry) *Server {
	return &Server{cfg: cfg, log: log}
}

// AddController appends one or more controllers.
func (s *Server) AddController(c ...Controller) {
	s.controllers = append(s.controllers, c...)
}

// Router builds the engine with middleware and all registered routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	// The frontend is served from another origin, so CORS stays open.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))
	r.Use(RequestLogger(s.log))

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "JulisHub API is running!"})
	})
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, c := range s.controllers {
		c.RegisterRoutes(r)
	}
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:         s.cfg.Host + ":" + s.cfg.Port,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	s.log.WithField("addr", s.srv.Addr).Info("http server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
