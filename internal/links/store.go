package links

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"

	"galerija/internal/fileutil"
	"galerija/internal/logging"
)

var (
	// ErrCorrupt reports a link file that exists but cannot be parsed.
	ErrCorrupt = errors.New("link file is corrupt")
	// ErrLocked reports that another process holds the session lock.
	ErrLocked = errors.New("link file is locked by another process")
	// ErrConflict reports that the file changed since it was last read.
	ErrConflict = errors.New("link file was modified by another writer")
)

// Store reads and writes the link document at a fixed path. The document goes
// through an afero.Fs; the session lock file always lives on the host
// filesystem because flock needs a real file descriptor.
type Store struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
	lock   *flock.Flock
	now    func() time.Time

	mu       sync.Mutex
	revision string
}

// NewStore creates a store for path on fs. A nil fs means the host
// filesystem. Nothing is read until Load.
func NewStore(fs afero.Fs, path string, logger *slog.Logger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{
		fs:     fs,
		path:   path,
		logger: logging.NewComponentLogger(logger, "links"),
		lock:   flock.New(path + ".lock"),
		now:    time.Now,
	}
}

// Path returns the link file location.
func (s *Store) Path() string {
	return s.path
}

// Lock takes the exclusive session lock without blocking.
func (s *Store) Lock() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create link directory: %w", err)
	}
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire link lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, s.lock.Path())
	}
	s.logger.Debug("link file locked", logging.String(logging.FieldPath, s.lock.Path()))
	return nil
}

// Unlock releases the session lock. It is safe to call when not locked.
func (s *Store) Unlock() error {
	if !s.lock.Locked() {
		return nil
	}
	if err := s.lock.Unlock(); err != nil {
		return fmt.Errorf("release link lock: %w", err)
	}
	return nil
}

// Load reads the document. A missing file yields an empty document; a file
// that cannot be parsed yields an error wrapping ErrCorrupt.
func (s *Store) Load() (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.revision = ""
			s.logger.Debug("link file not found; starting empty", logging.String(logging.FieldPath, s.path))
			return NewData(s.now()), nil
		}
		return nil, fmt.Errorf("read link file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if data.Version == "" {
		data.Version = Version
	}
	if data.Links == nil {
		data.Links = []Link{}
	}
	s.revision = revisionOf(raw)

	s.logger.Debug("link file loaded",
		logging.String(logging.FieldPath, s.path),
		logging.Int("link_count", len(data.Links)))
	return &data, nil
}

// Save stamps LastUpdated and atomically rewrites the file. It fails with
// ErrConflict when the file on disk is no longer the revision this store
// last loaded or saved.
func (s *Store) Save(data *Data) error {
	if data == nil {
		return errors.New("save links: nil data")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.currentRevision()
	if err != nil {
		return err
	}
	if current != s.revision {
		return fmt.Errorf("%w: %s", ErrConflict, s.path)
	}

	if data.Version == "" {
		data.Version = Version
	}
	if data.Links == nil {
		data.Links = []Link{}
	}
	data.LastUpdated = s.now().UTC()

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode links: %w", err)
	}
	encoded = append(encoded, '\n')
	if err := fileutil.WriteFileAtomic(s.fs, s.path, encoded, 0o644); err != nil {
		return fmt.Errorf("write link file: %w", err)
	}
	s.revision = revisionOf(encoded)

	s.logger.Debug("link file saved",
		logging.String(logging.FieldPath, s.path),
		logging.Int("link_count", len(data.Links)))
	return nil
}

func (s *Store) currentRevision() (string, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read link file: %w", err)
	}
	return revisionOf(raw), nil
}

// revisionOf extracts the raw lastUpdated stamp. Unparseable content has no
// revision of its own, so any stamp differs from it.
func revisionOf(raw []byte) string {
	var stamp struct {
		LastUpdated json.RawMessage `json:"lastUpdated"`
	}
	if err := json.Unmarshal(raw, &stamp); err != nil {
		return "invalid"
	}
	return string(stamp.LastUpdated)
}
