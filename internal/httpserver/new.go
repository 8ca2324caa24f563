package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "pronote-gateway/config"
	"pronote-gateway/internal/telemetry"
	"pronote-gateway/pkg/log"
	"pronote-gateway/pkg/pronote"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Fetch domain
	cfg     *appConfig.Config
	portal  pronote.Authenticator
	metrics *telemetry.Metrics
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Fetch domain
	AppConfig *appConfig.Config
	Portal    pronote.Authenticator
	Metrics   *telemetry.Metrics
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		portal:      cfg.Portal,
		metrics:     cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.portal == nil && !srv.cfg.Pronote.Mock {
		return errors.New("portal client is required outside mock mode")
	}
	return nil
}
