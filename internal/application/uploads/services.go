package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bryanwahyu/cad-detect/internal/application"
	"github.com/bryanwahyu/cad-detect/internal/application/schedule"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	domain "github.com/bryanwahyu/cad-detect/internal/domain/upload"
	"github.com/bryanwahyu/cad-detect/internal/domain/validation"
)

// Service implements use-cases untuk upload ECG.
// File content is counted and optionally archived, never parsed.
type Service struct {
	Repo    domain.Repository
	Archive domain.ArchiveStore
	Clock   application.Clock
	Log     *zap.Logger

	AllowedFormats   []string
	MaxSizeMB        int
	SpoolDir         string
	ProgressStep     int
	ProgressInterval time.Duration

	NewTicker func(time.Duration) schedule.Ticker
}

func (s *Service) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

// Check validates a file by name and size.
func (s *Service) Check(name string, size int64) error {
	return validation.CheckECGFile(name, size, s.AllowedFormats, s.MaxSizeMB)
}

// RegisterCommand announces a file the client has picked but not sent.
type RegisterCommand struct {
	Role      role.Role
	FileName  string
	SizeBytes int64
}

// Register validates the announced file and creates an upload whose
// progress is then simulated.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*domain.Upload, error) {
	if err := s.Check(cmd.FileName, cmd.SizeBytes); err != nil {
		return nil, err
	}
	u := s.newUpload(cmd.Role, cmd.FileName, cmd.SizeBytes)
	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) newUpload(r role.Role, name string, size int64) *domain.Upload {
	return &domain.Upload{
		ID:        domain.ID(uuid.NewString()),
		Role:      r,
		FileName:  name,
		SizeBytes: size,
		Status:    domain.StatusUploading,
		CreatedAt: s.now(),
	}
}

// ReceiveCommand carries the file body of a form upload.
type ReceiveCommand struct {
	Role     role.Role
	FileName string
	Body     io.Reader
}

// Receive checks the extension before reading a byte, then spools at most
// the size limit plus one byte. The spool goes to the archive, which
// removes it.
func (s *Service) Receive(ctx context.Context, cmd ReceiveCommand) (*domain.Upload, error) {
	if err := s.Check(cmd.FileName, 0); err != nil {
		return nil, err
	}

	u := s.newUpload(cmd.Role, cmd.FileName, 0)

	spool, err := os.CreateTemp(s.SpoolDir, "ecg-upload-*")
	if err != nil {
		return nil, fmt.Errorf("create spool: %w", err)
	}
	spoolPath := spool.Name()
	discard := func() {
		spool.Close()
		os.Remove(spoolPath)
	}

	limit := validation.MaxBytes(s.maxSizeMB())
	n, err := io.Copy(spool, io.LimitReader(cmd.Body, limit+1))
	if err != nil {
		discard()
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	if err := s.Check(cmd.FileName, n); err != nil {
		discard()
		return nil, err
	}
	if err := spool.Close(); err != nil {
		os.Remove(spoolPath)
		return nil, fmt.Errorf("close spool: %w", err)
	}
	u.SizeBytes = n

	if s.Archive != nil {
		key := fmt.Sprintf("%s/%s/%s", cmd.Role, u.ID, cmd.FileName)
		url, err := s.Archive.UploadAndCleanup(ctx, spoolPath, key)
		if err != nil {
			os.Remove(spoolPath)
			return nil, fmt.Errorf("archive upload: %w", err)
		}
		u.ArchiveURL = url
	} else {
		os.Remove(spoolPath)
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	s.log().Info("ecg upload received",
		zap.String("upload_id", string(u.ID)),
		zap.String("role", string(u.Role)),
		zap.String("file", u.FileName),
		zap.Int64("bytes", u.SizeBytes),
		zap.Bool("archived", u.ArchiveURL != ""),
	)
	return u, nil
}

func (s *Service) maxSizeMB() int {
	if s.MaxSizeMB <= 0 {
		return validation.DefaultMaxSizeMB
	}
	return s.MaxSizeMB
}

func (s *Service) Get(ctx context.Context, id domain.ID) (*domain.Upload, error) {
	return s.Repo.Get(ctx, id)
}

// Progress advances the simulated progress by ProgressStep per tick and
// reports every value to sink, starting with the current one. The task ends
// after 100 is reported.
func (s *Service) Progress(ctx context.Context, id domain.ID, sink func(progress int) error) (*schedule.Task, error) {
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sink(u.Progress); err != nil {
		return nil, err
	}

	step := s.ProgressStep
	if step <= 0 {
		step = 10
	}
	newTicker := s.NewTicker
	if newTicker == nil {
		newTicker = schedule.NewTicker
	}

	progress := u.Progress
	if progress >= 100 {
		// sudah selesai, tidak perlu ticker
		return schedule.Finished(), nil
	}

	return schedule.Start(ctx, newTicker(s.ProgressInterval), func(ctx context.Context) (bool, error) {
		progress += step
		status := domain.StatusUploading
		if progress >= 100 {
			progress = 100
			status = domain.StatusDone
		}
		if err := s.Repo.SetProgress(ctx, id, progress, status); err != nil {
			return false, fmt.Errorf("set progress: %w", err)
		}
		if err := sink(progress); err != nil {
			return false, err
		}
		return progress < 100, nil
	}), nil
}
