package fallback

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"contact-form-backend/internal/domain"

	"github.com/oklog/ulid/v2"
)

// FileStore writes one pretty-printed JSON file per failed submission.
// Files are never read back or removed here; cleanup belongs to whoever operates the host.
type FileStore struct {
	dir   string
	now   func() time.Time
	write func(w io.Writer, p []byte) (int, error)
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
		now: time.Now,
		write: func(w io.Writer, p []byte) (int, error) {
			return w.Write(p)
		},
	}
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Save creates the directory if needed and writes the record to a new file.
// It returns the file name, which doubles as the submission id.
func (s *FileStore) Save(ctx context.Context, record *domain.FallbackRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to ensure fallback dir: %w", err)
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode fallback record: %w", err)
	}

	name := s.fileName()
	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create fallback file: %w", err)
	}
	if _, err := s.write(f, payload); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write fallback file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close fallback file: %w", err)
	}
	return name, nil
}

// fileName is submission_<unix millis>_<ULID>.json; the ULID keeps same-millisecond failures apart
func (s *FileStore) fileName() string {
	t := s.now()
	id := ulid.MustNew(ulid.Timestamp(t), rand.Reader)
	return fmt.Sprintf("submission_%d_%s.json", t.UnixMilli(), id.String())
}
