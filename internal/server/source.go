package server

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/sheet"
)

// Source provides the current roster snapshot.
type Source interface {
	Snapshot() (roster.Snapshot, error)
}

// FileSource serves a snapshot file, reloading it whenever the file's size or
// modification time changes.
type FileSource struct {
	Path  string
	Sheet string

	mu      sync.Mutex
	snap    roster.Snapshot
	modTime time.Time
	size    int64
	loaded  bool
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path, sheetName string) *FileSource {
	return &FileSource{Path: path, Sheet: sheetName}
}

// Snapshot returns the cached snapshot, reloading it if the file changed.
func (s *FileSource) Snapshot() (roster.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.Path)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to stat snapshot: %w", err)
	}
	if s.loaded && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return s.snap, nil
	}

	snap, err := sheet.Load(s.Path, s.Sheet)
	if err != nil {
		return roster.Snapshot{}, err
	}
	s.snap, s.modTime, s.size, s.loaded = snap, info.ModTime(), info.Size(), true
	slog.Info("snapshot loaded", "path", s.Path, "students", len(snap.Students), "version", snap.Version)
	return snap, nil
}

// StaticSource serves a snapshot held in memory.
type StaticSource struct {
	mu   sync.RWMutex
	snap roster.Snapshot
}

// NewStaticSource returns a StaticSource serving snap.
func NewStaticSource(snap roster.Snapshot) *StaticSource {
	return &StaticSource{snap: snap}
}

// Snapshot returns the held snapshot.
func (s *StaticSource) Snapshot() (roster.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, nil
}

// Set replaces the held snapshot.
func (s *StaticSource) Set(snap roster.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}
