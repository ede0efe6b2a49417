package memory

import (
	"context"
	"sync"

	"github.com/bryanwahyu/cad-detect/internal/domain/upload"
)

// UploadRepository keeps upload state in process memory. It holds the most
// recent uploads only; older ones are evicted first-in first-out.
type UploadRepository struct {
	mu    sync.RWMutex
	items map[upload.ID]upload.Upload
	order []upload.ID
	max   int
}

func NewUploadRepository(max int) *UploadRepository {
	if max <= 0 {
		max = 1000
	}
	return &UploadRepository{items: make(map[upload.ID]upload.Upload), max: max}
}

func (r *UploadRepository) Save(_ context.Context, u *upload.Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[u.ID]; !ok {
		r.order = append(r.order, u.ID)
		if len(r.order) > r.max {
			delete(r.items, r.order[0])
			r.order = r.order[1:]
		}
	}
	r.items[u.ID] = *u
	return nil
}

func (r *UploadRepository) Get(_ context.Context, id upload.ID) (*upload.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, upload.ErrNotFound
	}
	return &u, nil
}

func (r *UploadRepository) SetProgress(_ context.Context, id upload.ID, progress int, status upload.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return upload.ErrNotFound
	}
	u.Progress = progress
	u.Status = status
	r.items[id] = u
	return nil
}
