package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one JSON file per date under Dir.
type FileStore struct {
	Dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// DayPath returns the filesystem path for a date's assignment file.
func (s *FileStore) DayPath(date string) string {
	return filepath.Join(s.Dir, date+".json")
}

func (s *FileStore) Put(_ context.Context, date string, period int, studentKey, letter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, err := s.read(date)
	if err != nil {
		return err
	}
	day[CellKey(period, studentKey)] = letter

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(day, "", "  ")
	if err != nil {
		return err
	}

	// replace atomically
	tmp := s.DayPath(date) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.DayPath(date)); err != nil {
		return err
	}
	slog.Debug("assignment stored", "date", date, "period", period, "student", studentKey, "letter", letter)
	return nil
}

func (s *FileStore) Load(_ context.Context, date string) (Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(date)
}

func (s *FileStore) read(date string) (Day, error) {
	data, err := os.ReadFile(s.DayPath(date))
	if errors.Is(err, os.ErrNotExist) {
		return Day{}, nil
	}
	if err != nil {
		return nil, err
	}

	day := Day{}
	if err := json.Unmarshal(data, &day); err != nil {
		return nil, fmt.Errorf("assignment file for %s is corrupted: %w", date, err)
	}
	return day, nil
}
