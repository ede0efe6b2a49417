package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appauth "github.com/bryanwahyu/cad-detect/internal/application/auth"
	apphistory "github.com/bryanwahyu/cad-detect/internal/application/history"
	appsignal "github.com/bryanwahyu/cad-detect/internal/application/signal"
	appuploads "github.com/bryanwahyu/cad-detect/internal/application/uploads"
	"github.com/bryanwahyu/cad-detect/internal/catalog"
	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	domupload "github.com/bryanwahyu/cad-detect/internal/domain/upload"
	"github.com/bryanwahyu/cad-detect/internal/domain/validation"
	"github.com/bryanwahyu/cad-detect/internal/infra/web"
	"github.com/bryanwahyu/cad-detect/internal/middleware"
)

// Deps is everything the router serves from.
type Deps struct {
	Catalog *catalog.Catalog
	Auth    *appauth.Service
	History *apphistory.Service
	Signal  *appsignal.Service
	Uploads *appuploads.Service

	Log            *zap.Logger
	Metrics        *middleware.Metrics
	Limiter        *middleware.RateLimiter
	Health         map[string]middleware.HealthChecker
	Readiness      *middleware.Readiness
	AllowedOrigins []string

	// Streams ends every open event stream when it is done. Nil means
	// streams only end with their request.
	Streams context.Context
}

type Router struct {
	cat      *catalog.Catalog
	auth     *appauth.Service
	history  *apphistory.Service
	signal   *appsignal.Service
	uploads  *appuploads.Service
	log      *zap.Logger
	metrics  *middleware.Metrics
	streams  context.Context
	notFound http.Handler
}

// NewRouter builds the route table.
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Metrics == nil {
		d.Metrics = middleware.NewMetrics()
	}
	if d.Streams == nil {
		d.Streams = context.Background()
	}
	if d.Readiness == nil {
		d.Readiness = &middleware.Readiness{}
		d.Readiness.Set(true)
	}

	r := &Router{
		cat:     d.Catalog,
		auth:    d.Auth,
		history: d.History,
		signal:  d.Signal,
		uploads: d.Uploads,
		log:     d.Log,
		metrics: d.Metrics,
		streams: d.Streams,
	}
	r.notFound = http.HandlerFunc(r.handleNotFound)

	limit := func(next http.Handler) http.Handler { return next }
	if d.Limiter != nil {
		limit = middleware.RateLimit(d.Limiter)
	}

	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware(d.Log))
	mux.Use(d.Metrics.Middleware)
	mux.Use(chimw.Recoverer)

	// harus sebelum Route supaya subrouter ikut pakai
	mux.NotFound(r.handleNotFound)

	mux.Get("/health", middleware.HealthHandler(d.Health))
	mux.Get("/ready", d.Readiness.Handler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	mux.Get("/", r.page(r.handleIndex))
	mux.Get("/signup", r.page(r.handleSignupForm))
	mux.With(limit).Post("/signup", r.page(r.handleSignup))
	mux.Get("/forgot-password", r.page(r.handleForgotForm))
	mux.With(limit).Post("/forgot-password", r.page(r.handleForgot))

	mux.Route("/{role}", func(rt chi.Router) {
		rt.Use(middleware.RoleContext(r.notFound))
		rt.Get("/login", r.page(r.handleLoginForm))
		rt.With(limit).Post("/login", r.page(r.handleLogin))
		rt.Get("/logout", r.handleLogout)
		rt.Get("/dashboard", r.page(r.handleDashboard))
		rt.Get("/upload", r.page(r.handleUploadForm))
		rt.With(limit).Post("/upload", r.page(r.handleUpload))
		rt.Get("/signal", r.page(r.handleSignal))
		rt.Get("/result", r.page(r.handleResult))
		rt.Get("/reports", r.page(r.handleReports))
		rt.Get("/history", r.page(r.handleHistory))
	})

	mux.Route("/api/v1", func(rt chi.Router) {
		rt.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
		rt.Get("/signal/waveform", r.wrap(r.handleWaveform))
		rt.Get("/signal/live", r.wrap(r.handleLive))
		rt.Get("/history", r.wrap(r.handleHistoryAPI))
		rt.Get("/result", r.wrap(r.handleResultAPI))
		rt.With(limit).Post("/uploads", r.wrap(r.handleRegisterUpload))
		rt.Get("/uploads/{id}", r.wrap(r.handleGetUpload))
		rt.Get("/uploads/{id}/progress", r.wrap(r.handleProgress))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// httpError carries a status for failures that are the caller's fault but
// not validation failures.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func badRequest(msg string) error { return &httpError{status: http.StatusBadRequest, msg: msg} }

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, records.ErrNotFound) ||
		errors.Is(err, domupload.ErrNotFound) ||
		errors.Is(err, role.ErrUnknownRole)
}

// wrap maps API handler errors to JSON responses.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		if ve, ok := validation.AsError(err); ok {
			writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: kindOf(ve), Message: ve.Message})
			return
		}
		var he *httpError
		if errors.As(err, &he) {
			writeJSON(w, he.status, errorBody{Error: http.StatusText(he.status), Message: he.msg})
			return
		}
		if isNotFound(err) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: "not found"})
			return
		}
		r.log.Error("api handler failed", zap.String("path", req.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal", Message: "internal server error"})
	}
}

// page maps HTML handler errors. Validation failures are handled by the
// handlers themselves because they re-render their form.
func (r *Router) page(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var he *httpError
		switch {
		case isNotFound(err):
			r.handleNotFound(w, req)
		case errors.As(err, &he):
			http.Error(w, he.msg, he.status)
		default:
			r.log.Error("page handler failed", zap.String("path", req.URL.Path), zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func kindOf(ve *validation.Error) string {
	if ve.Kind == nil {
		return "invalid"
	}
	return ve.Kind.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (r *Router) handleNotFound(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = web.NotFound(req.URL.Path).Render(w)
}
