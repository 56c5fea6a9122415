package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"abe-voice/internal/middleware"
	skillHTTP "abe-voice/internal/skill/delivery/http"
	"abe-voice/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Skill domain
	skillHandler skillHTTP.Handler
	middleware   middleware.Middleware
	webhookPath  string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Skill domain
	SkillHandler skillHTTP.Handler
	Middleware   middleware.Middleware
	WebhookPath  string
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		skillHandler: cfg.SkillHandler,
		middleware:   cfg.Middleware,
		webhookPath:  cfg.WebhookPath,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.skillHandler == nil {
		return errors.New("skill handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
