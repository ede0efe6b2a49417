package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	"github.com/bryanwahyu/cad-detect/internal/domain/upload"
)

func TestHistoryRepository_ReturnsCopies(t *testing.T) {
	src := []records.HistoryRecord{{ID: "ECG-001", Patient: "John Doe"}, {ID: "ECG-002", Patient: "Emily Davis"}}
	repo := NewHistoryRepository(src)
	src[0].Patient = "changed"

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", list[0].Patient)

	list[1].Patient = "mutated"
	again, _ := repo.List(context.Background())
	assert.Equal(t, "Emily Davis", again[1].Patient)

	h, err := repo.Get(context.Background(), "ECG-002")
	require.NoError(t, err)
	assert.Equal(t, "Emily Davis", h.Patient)

	_, err = repo.Get(context.Background(), "ECG-404")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestUploadRepository_ProgressAndEviction(t *testing.T) {
	ctx := context.Background()
	repo := NewUploadRepository(2)

	require.NoError(t, repo.Save(ctx, &upload.Upload{ID: "a", Status: upload.StatusUploading}))
	require.NoError(t, repo.SetProgress(ctx, "a", 40, upload.StatusUploading))

	u, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 40, u.Progress)

	require.NoError(t, repo.Save(ctx, &upload.Upload{ID: "b"}))
	require.NoError(t, repo.Save(ctx, &upload.Upload{ID: "c"}))

	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, upload.ErrNotFound)
	assert.ErrorIs(t, repo.SetProgress(ctx, "a", 50, upload.StatusDone), upload.ErrNotFound)
}
