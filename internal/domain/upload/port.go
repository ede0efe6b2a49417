package upload

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("upload not found")

// ArchiveStore port (penyimpanan file ECG mentah)
type ArchiveStore interface {
	UploadAndCleanup(ctx context.Context, localPath, key string) (string, error)
}

// Repository keeps upload state for progress polling.
type Repository interface {
	Save(ctx context.Context, u *Upload) error
	Get(ctx context.Context, id ID) (*Upload, error)
	SetProgress(ctx context.Context, id ID, progress int, status Status) error
}
