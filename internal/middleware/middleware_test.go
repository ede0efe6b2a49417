package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bryanwahyu/cad-detect/internal/domain/role"
)

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	b := newTokenBucket(2, 1, clock)

	assert.True(t, b.Allow())
	assert.True(t, b.Allow())
	assert.False(t, b.Allow())

	now = now.Add(500 * time.Millisecond)
	assert.False(t, b.Allow())

	now = now.Add(600 * time.Millisecond)
	assert.True(t, b.Allow())
}

func TestRateLimiter_PerKeyAndSweep(t *testing.T) {
	now := time.Unix(0, 0)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))
	assert.Equal(t, 2, rl.Len())

	now = now.Add(11 * time.Minute)
	assert.Equal(t, 2, rl.Sweep(10*time.Minute))
	assert.Zero(t, rl.Len())
}

func TestRateLimit_Middleware(t *testing.T) {
	h := RateLimit(NewRateLimiter(1, 0.001))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/doctor/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestHealthHandler(t *testing.T) {
	ok := CheckerFunc(func(context.Context) error { return nil })
	bad := CheckerFunc(func(context.Context) error { return errors.New("bucket missing") })

	rec := httptest.NewRecorder()
	HealthHandler(map[string]HealthChecker{"history": ok})(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)

	rec = httptest.NewRecorder()
	HealthHandler(map[string]HealthChecker{"history": ok, "archive": bad})(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "bucket missing")
}

func TestReadiness(t *testing.T) {
	var rd Readiness
	rec := httptest.NewRecorder()
	rd.Handler(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rd.Set(true)
	rec = httptest.NewRecorder()
	rd.Handler(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingMiddleware_StructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("hi"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctor/history", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/doctor/history", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, int64(2), fields["bytes"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	m := NewMetrics()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/{role}/history", func(w http.ResponseWriter, r *http.Request) {})

	for _, p := range []string{"/doctor/history", "/patient/history"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/{role}/history", "200")))

	m.Upload("accepted")
	m.Upload("rejected")
	m.Upload("rejected")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.uploadsTotal.WithLabelValues("rejected")))

	m.StreamOpened()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.liveStreams))
	m.StreamClosed()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.liveStreams))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "cad_http_requests_total"))
}

func TestRoleContext(t *testing.T) {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r := chi.NewRouter()
	r.Route("/{role}", func(rt chi.Router) {
		rt.Use(RoleContext(notFound))
		rt.Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(ProfileFromContext(r).DisplayName))
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctor/dashboard", nil))
	assert.Equal(t, "Dr. Smith", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nurse/dashboard", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// no context: path rule
	req := httptest.NewRequest(http.MethodGet, "/somewhere", nil)
	assert.Equal(t, role.Patient, ProfileFromContext(req).Role)
}

func TestValidators(t *testing.T) {
	assert.Equal(t, "davis", SanitizeSearch("  da\x00vis\n"))
	assert.Len(t, []rune(SanitizeSearch(strings.Repeat("x", 300))), 100)

	assert.NoError(t, ValidateFileName("trace.csv"))
	assert.Error(t, ValidateFileName("../etc/passwd"))
	assert.Error(t, ValidateFileName(" "))

	assert.Error(t, ValidateUploadID("nope"))
	assert.NoError(t, ValidateUploadID("0b8f2c7e-8f0e-4a43-9a55-3a3f6f0f0d2a"))

	assert.Equal(t, 1, ValidatePage("0"))
	assert.Equal(t, 3, ValidatePage("3"))
	assert.Equal(t, 10, ValidateLimit(0))
	assert.Equal(t, 100, ValidateLimit(1000))
	assert.Equal(t, 800, ValidateDimension("", 800))
	assert.Equal(t, 4096, ValidateDimension("99999", 800))
}

// plainWriter is a ResponseWriter that can't flush.
type plainWriter struct{ h http.Header }

func (p *plainWriter) Header() http.Header         { return p.h }
func (p *plainWriter) Write(b []byte) (int, error) { return len(b), nil }
func (p *plainWriter) WriteHeader(int)             {}

func TestResponseWriter_FlushReportsSupport(t *testing.T) {
	ok := wrapWriter(httptest.NewRecorder())
	assert.NoError(t, http.NewResponseController(ok).Flush())

	plain := wrapWriter(&plainWriter{h: http.Header{}})
	assert.ErrorIs(t, http.NewResponseController(plain).Flush(), http.ErrNotSupported)
}
