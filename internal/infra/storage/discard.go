package storage

import (
	"context"
	"os"
)

// Discard drops spooled uploads instead of archiving them. It is the
// archive when MinIO is disabled.
type Discard struct{}

func (Discard) UploadAndCleanup(_ context.Context, localPath, _ string) (string, error) {
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return "", nil
}
