package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sagarc03/tweeter"
)

// Resolver maps a request target to the entry that answers it.
type Resolver interface {
	Resolve(requestPath string) tweeter.Entry
}

// CORSConfig controls the optional CORS middleware.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled" yaml:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods" yaml:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers" yaml:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers" yaml:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials" yaml:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age" yaml:"max_age" validate:"min=0"`
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	CORS   CORSConfig
	Logger *slog.Logger // nil uses slog.Default()
}

// Handler answers requests from a route table.
type Handler struct {
	config HandlerConfig
	table  Resolver
}

// NewHandler creates a new Handler with the given configuration and table.
func NewHandler(config *HandlerConfig, table Resolver) *Handler {
	return &Handler{
		config: *config,
		table:  table,
	}
}

// Router returns an http.Handler that sends every request to the table,
// including requests chi itself cannot route.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(h.config.Logger))
	r.Use(middleware.Recoverer)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.HandleFunc("/", h.handleResolve)
	r.HandleFunc("/*", h.handleResolve)
	r.NotFound(h.handleResolve)
	r.MethodNotAllowed(h.handleResolve)

	return r
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	entry := h.table.Resolve(requestTarget(r))
	WriteContent(w, entry.Status, entry.ContentType, entry.Content)
}

// requestTarget returns the request target as the client sent it.
// Requests built in-process have no RequestURI, so it is rebuilt from the URL.
func requestTarget(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
