package records

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// HistoryRepository is the read port for past analyses.
type HistoryRepository interface {
	List(ctx context.Context) ([]HistoryRecord, error)
	Get(ctx context.Context, id string) (*HistoryRecord, error)
}
