package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

type stubRepo struct {
	rows []records.HistoryRecord
	err  error
}

func (s stubRepo) List(context.Context) ([]records.HistoryRecord, error) { return s.rows, s.err }

func (s stubRepo) Get(_ context.Context, id string) (*records.HistoryRecord, error) {
	for _, r := range s.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, records.ErrNotFound
}

var rows = []records.HistoryRecord{
	{ID: "ECG-001", Patient: "John Doe", PatientID: "PAT-12345"},
	{ID: "ECG-002", Patient: "Emily Davis", PatientID: "PAT-12346"},
	{ID: "ECG-003", Patient: "Michael Brown", PatientID: "PAT-12347"},
}

func TestSearch_FilterThenPaginate(t *testing.T) {
	svc := &Service{Repo: stubRepo{rows: rows}}

	res, err := svc.Search(context.Background(), "davis", 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "ECG-002", res.Items[0].ID)
	assert.Equal(t, "Showing 1 of 3 results", res.Summary())

	res, err = svc.Search(context.Background(), "", 2, 2)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "ECG-003", res.Items[0].ID)
	assert.True(t, res.HasPrev)
	assert.False(t, res.HasNext)
}

func TestSearch_RepoError(t *testing.T) {
	svc := &Service{Repo: stubRepo{err: errors.New("db down")}}
	_, err := svc.Search(context.Background(), "x", 1, 10)
	assert.ErrorContains(t, err, "db down")
}

func TestGet(t *testing.T) {
	svc := &Service{Repo: stubRepo{rows: rows}}
	h, err := svc.Get(context.Background(), "ECG-003")
	require.NoError(t, err)
	assert.Equal(t, "Michael Brown", h.Patient)

	_, err = svc.Get(context.Background(), "ECG-999")
	assert.ErrorIs(t, err, records.ErrNotFound)
}
