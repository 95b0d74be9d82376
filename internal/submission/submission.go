// Package submission persists validated inquiries and bookings to JSON array files.
package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutor-catalog/internal/apperror"
	"tutor-catalog/internal/config"
	"tutor-catalog/internal/model"
)

// Writer defines the interface for persisting submissions.
type Writer interface {
	AppendInquiry(model.Inquiry) error
	AppendBooking(model.Booking) error
}

// Store appends each submission kind to its own JSON array file.
type Store struct {
	log      *zap.Logger
	requests *arrayFile
	bookings *arrayFile
}

// New prepares the request and booking files named in cfg. A missing file is
// created as an empty array; an existing file that is not a JSON array is an
// apperror.ErrStartup.
func New(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	s := &Store{
		log:      logger,
		requests: &arrayFile{path: cfg.RequestsPath},
		bookings: &arrayFile{path: cfg.BookingsPath},
	}
	for _, f := range []*arrayFile{s.requests, s.bookings} {
		created, err := f.ensure()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperror.ErrStartup, err)
		}
		if created {
			logger.Info("created submission file", zap.String("path", f.path))
		}
	}
	return s, nil
}

// AppendInquiry adds an inquiry to the requests file.
func (s *Store) AppendInquiry(in model.Inquiry) error {
	n, err := s.requests.append(in)
	if err != nil {
		return err
	}
	s.log.Info("inquiry stored", zap.String("path", s.requests.path), zap.Int("total", n))
	return nil
}

// AppendBooking adds a booking to the bookings file.
func (s *Store) AppendBooking(b model.Booking) error {
	n, err := s.bookings.append(b)
	if err != nil {
		return err
	}
	s.log.Info("booking stored",
		zap.String("path", s.bookings.path),
		zap.Int("teacher_id", b.TeacherID),
		zap.Int("total", n))
	return nil
}

// arrayFile is a JSON array on disk that only ever grows. Appends are
// serialized in-process by mu and across processes by a lock file; the
// rewritten array replaces the old one by rename.
type arrayFile struct {
	path string
	mu   sync.Mutex
}

func (f *arrayFile) ensure() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.read(); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return false, err
	}
	return true, f.replace([]json.RawMessage{})
}

// append returns the number of records after the write.
func (f *arrayFile) append(record any) (int, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("%w: encode record: %v", apperror.ErrPersistence, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	lock := flock.New(f.path + ".lock")
	if err := lock.Lock(); err != nil {
		return 0, fmt.Errorf("%w: lock %s: %v", apperror.ErrPersistence, f.path, err)
	}
	defer func() { _ = lock.Unlock() }()

	records, err := f.read()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	records = append(records, raw)
	if err := f.replace(records); err != nil {
		return 0, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return len(records), nil
}

func (f *arrayFile) read() ([]json.RawMessage, error) {
	body, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%s: not a JSON array", f.path)
	}
	return records, nil
}

func (f *arrayFile) replace(records []json.RawMessage) error {
	body, err := json.Marshal(records)
	if err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(f.path), "."+filepath.Base(f.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
