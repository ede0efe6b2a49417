package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appsignal "github.com/bryanwahyu/cad-detect/internal/application/signal"
	appuploads "github.com/bryanwahyu/cad-detect/internal/application/uploads"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	domupload "github.com/bryanwahyu/cad-detect/internal/domain/upload"
	"github.com/bryanwahyu/cad-detect/internal/middleware"
)

// GET /api/v1/signal/waveform?zoom=&width=
func (r *Router) handleWaveform(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	zoom, err := ecg.ParseZoom(q.Get("zoom"))
	if err != nil {
		return badRequest(err.Error())
	}
	view, err := r.signal.Waveform(zoom, middleware.ValidateDimension(q.Get("width"), r.signal.ViewWidth))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, view)
	return nil
}

// GET /api/v1/history?q=&page=&page_size=
func (r *Router) handleHistoryAPI(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	size, _ := strconv.Atoi(q.Get("page_size"))

	res, err := r.history.Search(req.Context(),
		middleware.SanitizeSearch(q.Get("q")),
		middleware.ValidatePage(q.Get("page")),
		middleware.ValidateLimit(size),
	)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, res)
	return nil
}

// GET /api/v1/result
func (r *Router) handleResultAPI(w http.ResponseWriter, req *http.Request) error {
	writeJSON(w, http.StatusOK, r.cat.ResultView())
	return nil
}

// POST /api/v1/uploads
// Body: {"file_name": "trace.csv", "size_bytes": 1024, "role": "doctor"}
// Only the name and size are judged; the file itself is never sent here.
func (r *Router) handleRegisterUpload(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		FileName  string `json:"file_name"`
		SizeBytes int64  `json:"size_bytes"`
		Role      string `json:"role"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body")
	}
	rl, err := role.Parse(body.Role)
	if err != nil {
		return badRequest("role must be doctor or patient")
	}
	if err := middleware.ValidateFileName(body.FileName); err != nil {
		return badRequest(err.Error())
	}
	if body.SizeBytes < 0 {
		return badRequest("size_bytes must not be negative")
	}

	u, err := r.uploads.Register(req.Context(), appuploads.RegisterCommand{
		Role:      rl,
		FileName:  body.FileName,
		SizeBytes: body.SizeBytes,
	})
	if err != nil {
		r.metrics.Upload("rejected")
		return err
	}
	r.metrics.Upload("accepted")
	writeJSON(w, http.StatusCreated, u)
	return nil
}

func uploadID(req *http.Request) (domupload.ID, error) {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateUploadID(id); err != nil {
		return "", badRequest(err.Error())
	}
	return domupload.ID(id), nil
}

// GET /api/v1/uploads/{id}
func (r *Router) handleGetUpload(w http.ResponseWriter, req *http.Request) error {
	id, err := uploadID(req)
	if err != nil {
		return err
	}
	u, err := r.uploads.Get(req.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, u)
	return nil
}

// GET /api/v1/signal/live?speed=&width=&height=
// Streams frames until the client goes away.
func (r *Router) handleLive(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	opts := appsignal.LiveOptions{
		Width:  middleware.ValidateDimension(q.Get("width"), 0),
		Height: middleware.ValidateDimension(q.Get("height"), 0),
	}
	if raw := q.Get("speed"); raw != "" {
		s, err := strconv.ParseFloat(raw, 64)
		if err != nil || s <= 0 || s > 100 {
			return badRequest("speed must be a positive number")
		}
		opts.Speed = s
	}

	stream, err := newEventStream(w)
	if err != nil {
		return err
	}
	r.metrics.StreamOpened()
	defer r.metrics.StreamClosed()

	ctx, cancel := r.streamContext(req)
	defer cancel()

	task, err := r.signal.Stream(ctx, opts, func(f ecg.Frame) error {
		return stream.send("frame", f)
	})
	if err != nil {
		r.log.Debug("live stream ended before start", zap.Error(err))
		return nil
	}
	<-task.Done()
	return nil
}

// GET /api/v1/uploads/{id}/progress
func (r *Router) handleProgress(w http.ResponseWriter, req *http.Request) error {
	id, err := uploadID(req)
	if err != nil {
		return err
	}
	// 404 harus keluar sebelum header SSE ditulis
	if _, err := r.uploads.Get(req.Context(), id); err != nil {
		return err
	}

	stream, err := newEventStream(w)
	if err != nil {
		return err
	}
	ctx, cancel := r.streamContext(req)
	defer cancel()

	task, err := r.uploads.Progress(ctx, id, func(p int) error {
		return stream.send("progress", map[string]int{"progress": p})
	})
	if err != nil {
		r.log.Debug("progress stream ended before start", zap.Error(err))
		return nil
	}
	<-task.Done()
	if err := task.Err(); err != nil && ctx.Err() == nil {
		r.log.Warn("progress stream failed", zap.String("upload_id", string(id)), zap.Error(err))
	}
	return nil
}

// streamContext ends with the request or when the router's streams are
// shut down, whichever comes first.
func (r *Router) streamContext(req *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(req.Context())
	stop := context.AfterFunc(r.streams, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// eventStream writes server-sent events. send is safe to call from the task
// goroutine while the handler waits.
type eventStream struct {
	mu sync.Mutex
	w  http.ResponseWriter
	rc *http.ResponseController
}

var errNoStreaming = errors.New("streaming unsupported")

var sseHeaders = map[string]string{
	"Content-Type":      "text/event-stream",
	"Cache-Control":     "no-cache",
	"Connection":        "keep-alive",
	"X-Accel-Buffering": "no",
}

func newEventStream(w http.ResponseWriter) (*eventStream, error) {
	rc := http.NewResponseController(w)

	h := w.Header()
	for k, v := range sseHeaders {
		h.Set(k, v)
	}
	// flush sebelum WriteHeader: kalau tidak didukung belum ada yang ditulis
	if err := rc.Flush(); err != nil {
		for k := range sseHeaders {
			h.Del(k)
		}
		return nil, fmt.Errorf("%w: %v", errNoStreaming, err)
	}
	// server WriteTimeout tidak berlaku untuk stream
	_ = rc.SetWriteDeadline(time.Time{})
	return &eventStream{w: w, rc: rc}, nil
}

func (s *eventStream) send(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return s.rc.Flush()
}
