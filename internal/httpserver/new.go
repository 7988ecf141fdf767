package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"todo-backend/pkg/expopush"
	"todo-backend/pkg/gcalendar"
	"todo-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB

	jwtSecret       string
	internalKey     string
	rateLimitPerMin int

	push       expopush.IPush
	calendar   gcalendar.ICalendar // optional
	calendarID string
	timezone   string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	JWTSecret       string
	InternalKey     string
	RateLimitPerMin int

	Push       expopush.IPush
	Calendar   gcalendar.ICalendar
	CalendarID string
	Timezone   string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		postgresDB:      cfg.DB,
		jwtSecret:       cfg.JWTSecret,
		internalKey:     cfg.InternalKey,
		rateLimitPerMin: cfg.RateLimitPerMin,
		push:            cfg.Push,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		timezone:        cfg.Timezone,
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
	if srv.postgresDB == nil {
		return errors.New("database is required")
	}
	if srv.jwtSecret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
