package ui

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cognia/app"
	"cognia/domain/profile"
	"cognia/ports"
)

// App is the HTTP surface: upload a dataset, receive a profiling report.
type App struct {
	router  *chi.Mux
	service *app.ProfileService
	config  Config
}

// Config holds the HTTP application configuration
type Config struct {
	Port string
	// MaxUploadBytes bounds dataset uploads. Zero means 32 MiB.
	MaxUploadBytes int64
	// Timeout bounds a single profiling request. Zero means 60s.
	Timeout time.Duration
	// Options used for every profiling request.
	Options profile.Options
}

// NewApp creates the HTTP application. renderer and repository may be nil.
func NewApp(config Config, renderer ports.PlotRenderer, repository ports.ProfileRepository) *App {
	if config.Port == "" {
		config.Port = "8080"
	}
	if config.MaxUploadBytes == 0 {
		config.MaxUploadBytes = 32 << 20
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.Options == (profile.Options{}) {
		config.Options = profile.DefaultOptions()
	}

	a := &App{
		router:  chi.NewRouter(),
		service: app.NewProfileService(renderer, repository),
		config:  config,
	}

	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/health", a.handleHealth)
	a.router.Post("/reports", a.handleCreateReport)
	a.router.Get("/reports/{id}", a.handleGetReport)

	return a
}

// Start runs the HTTP server
func (a *App) Start() error {
	addr := fmt.Sprintf(":%s", a.config.Port)
	log.Printf("[UI] listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler for testing and embedding
func (a *App) Router() http.Handler {
	return a.router
}
