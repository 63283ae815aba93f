package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"day-planner/internal/planner/usecase"
	"day-planner/pkg/clerk"
	"day-planner/pkg/log"
	"day-planner/pkg/textgen"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Planner domain
	postgresDB *sql.DB
	provider   textgen.Provider
	calendar   usecase.CalendarService
	image      usecase.ImageService
	clerk      *clerk.Client
	planner    usecase.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Planner domain
	PostgresDB *sql.DB
	Provider   textgen.Provider
	Calendar   usecase.CalendarService
	Image      usecase.ImageService
	Clerk      *clerk.Client
	Planner    usecase.Config
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
		postgresDB:  cfg.PostgresDB,
		provider:    cfg.Provider,
		calendar:    cfg.Calendar,
		image:       cfg.Image,
		clerk:       cfg.Clerk,
		planner:     cfg.Planner,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.provider == nil {
		return errors.New("text-generation provider is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar client is required")
	}
	if srv.image == nil {
		return errors.New("image client is required")
	}
	if srv.clerk == nil {
		return errors.New("clerk client is required")
	}
	return nil
}
