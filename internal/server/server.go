// Package server exposes the generators and the stores as a JSON API for a
// browser front-end.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/outreach/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const DefaultAddr = ":8080"

// Config holds the HTTP settings.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Debug          bool
}

// LoadConfig reads OUTREACH_ADDR, OUTREACH_CORS_ORIGINS (comma separated)
// and OUTREACH_DEBUG.
func LoadConfig() Config {
	cfg := Config{
		Addr:           DefaultAddr,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
	if v := strings.TrimSpace(os.Getenv("OUTREACH_ADDR")); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("OUTREACH_CORS_ORIGINS")); v != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	cfg.Debug = os.Getenv("OUTREACH_DEBUG") == "true"
	return cfg
}

// Services are the use cases the API serves. Generation may be nil when no
// API key is configured; its routes then answer 503, as does resume editing.
type Services struct {
	Generation service.GenerationService
	Profiles   service.ProfileService
	History    service.HistoryService
	Templates  service.TemplateService
	Resume     service.ResumeService
}

// Server is the HTTP API.
type Server struct {
	cfg    Config
	svc    Services
	router *gin.Engine
}

// New builds the router.
func New(cfg Config, svc Services) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, svc: svc, router: gin.New()}
	s.router.Use(gin.Recovery())
	s.router.Use(gin.Logger())
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))
	s.routes()
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/referral-email", s.generateReferral)
		api.POST("/cover-letter", s.generateCoverLetter)

		api.GET("/profile", s.getProfile)
		api.PUT("/profile", s.putProfile)

		api.GET("/history", s.listHistory)
		api.GET("/history/:id", s.getHistory)
		api.DELETE("/history/:id", s.deleteHistory)
		api.DELETE("/history", s.clearHistory)

		api.GET("/templates", s.listTemplates)
		api.POST("/templates", s.saveTemplate)
		api.GET("/templates/:ref", s.getTemplate)
		api.DELETE("/templates/:ref", s.deleteTemplate)

		api.POST("/resume/edit", s.editResume)
		api.POST("/resume/compile", s.compileResume)

		api.POST("/export/pdf", s.exportPDF)
		api.POST("/export/eml", s.exportEML)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
