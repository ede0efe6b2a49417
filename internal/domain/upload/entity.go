package upload

import (
	"time"

	"github.com/bryanwahyu/cad-detect/internal/domain/role"
)

type ID string

type Status string

const (
	StatusUploading Status = "uploading"
	StatusDone      Status = "done"
	StatusRejected  Status = "rejected"
	StatusFailed    Status = "failed"
)

// Upload is one accepted (or rejected) ECG file. The content is never
// parsed, only counted and optionally archived.
type Upload struct {
	ID         ID        `json:"id"`
	Role       role.Role `json:"role"`
	FileName   string    `json:"file_name"`
	SizeBytes  int64     `json:"size_bytes"`
	Status     Status    `json:"status"`
	Progress   int       `json:"progress"`
	Reason     string    `json:"reason,omitempty"`
	ArchiveURL string    `json:"archive_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Complete reports whether the simulated progress reached 100.
func (u Upload) Complete() bool { return u.Progress >= 100 }
