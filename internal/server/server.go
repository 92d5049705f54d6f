package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"queryx/internal/ai/gemini"
	"queryx/internal/config"
	"queryx/internal/handler"
	"queryx/internal/server/middleware"
	"queryx/internal/service"
)

// Server is the HTTP server plus its one external dependency, the Gemini
// client, built once and shared read-only across requests.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	gemini *gemini.Client
}

// New creates a server instance.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	client, err := gemini.New(ctx, &cfg.Gemini)
	if err != nil {
		return nil, err
	}
	log.Info().Str("model", client.Name()).Msg("initialized Gemini client")

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		gemini: client,
	}

	srv.setupRoutes()

	return srv, nil
}

// setupRoutes installs middleware and routes.
func (s *Server) setupRoutes() {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	askSvc := service.NewAskService(s.gemini)
	askHdl := handler.NewAskHandler(askSvc)

	s.engine.POST("/ask-text", askHdl.AskText)
	s.engine.POST("/ask-image", askHdl.AskImage)
}

// Run starts the server and blocks until ctx is canceled or the listener
// fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		if err := s.gemini.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Gemini client")
		}

		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine returns the gin engine (used by tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
