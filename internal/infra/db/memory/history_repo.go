package memory

import (
	"context"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

// HistoryRepository serves a fixed slice, normally the catalog's sample
// history. Callers get a copy.
type HistoryRepository struct {
	rows []records.HistoryRecord
}

func NewHistoryRepository(rows []records.HistoryRecord) *HistoryRepository {
	cp := make([]records.HistoryRecord, len(rows))
	copy(cp, rows)
	return &HistoryRepository{rows: cp}
}

func (r *HistoryRepository) List(ctx context.Context) ([]records.HistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]records.HistoryRecord, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *HistoryRepository) Get(ctx context.Context, id string) (*records.HistoryRecord, error) {
	for _, h := range r.rows {
		if h.ID == id {
			h := h
			return &h, nil
		}
	}
	return nil, records.ErrNotFound
}
