package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/analytics"
	"github.com/trezcool/lms/core/auth"
	"github.com/trezcool/lms/core/course"
	"github.com/trezcool/lms/core/pyq"
	"github.com/trezcool/lms/core/syllabus"
)

type (
	Deps struct {
		AuthSvc      *auth.Service
		CourseSvc    *course.Service
		SyllabusSvc  *syllabus.Service
		AnalyticsSvc *analytics.Service
		PyqSvc       *pyq.Service
	}

	Server struct {
		conf       *core.Config
		logger     core.Logger
		app        *echo.Echo
		server     *http.Server
		metrics    *metrics
		validate   *validator.Validate
		translator ut.Translator
		shutdown   chan os.Signal
		errors     chan error
	}
)

// NewServer builds the API server. When shutdown is nil, the server listens for SIGINT and SIGTERM itself.
func NewServer(conf *core.Config, logger core.Logger, shutdown chan os.Signal, deps *Deps) *Server {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	}
	validate, translator := core.NewValidator()

	s := &Server{
		conf:       conf,
		logger:     logger,
		app:        echo.New(),
		metrics:    newMetrics(),
		validate:   validate,
		translator: translator,
		shutdown:   shutdown,
		errors:     make(chan error, 1),
	}
	s.server = &http.Server{
		Addr:         conf.Server.Address,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}
	s.setup(deps)
	return s
}

func (s *Server) setup(deps *Deps) {
	s.app.HideBanner = true
	s.app.HidePort = true
	s.app.Debug = s.conf.Debug
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.logger, s.translator, s.SignalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !s.conf.Server.DisableReqLogs {
		s.app.Use(requestLogger(s.logger))
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORS())
	s.app.Use(s.metrics.middleware())

	s.app.GET("/health", s.health)
	s.app.GET("/metrics", echo.WrapHandler(s.metrics.handler()))

	api := s.app.Group("/api")
	registerAuthAPI(api.Group("/auth"), deps.AuthSvc, s.validate)
	registerCmsAPI(api.Group("/cms"), deps.CourseSvc, s.validate)
	registerSyllabusAPI(api.Group("/syllabus"), deps.SyllabusSvc, s.validate)
	registerAnalyticsAPI(api.Group("/analytics"), deps.AnalyticsSvc, s.validate)
	registerPyqAPI(api.Group("/pyq"), deps.PyqSvc, s.validate)
}

// Start blocks while serving; a failure is sent to Errors.
func (s *Server) Start() {
	s.logger.Info("API listening", map[string]interface{}{"address": s.conf.Server.Address})
	if err := s.app.StartServer(s.server); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errors }

func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

// SignalShutdown asks the process to shut down gracefully.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signalled
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: s.conf.AppName + " Microservice - Go is running"})
}
