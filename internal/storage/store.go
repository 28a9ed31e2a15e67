// Package storage caches fetched snapshots under the data directory. The
// cache is write-only on the startup path: a failed fetch falls back to the
// fixed literal, never to stale cached data. The history exists for the
// snapshot/history subcommands.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/citysense/internal/snapshot"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(filepath.Join(s.baseDir, "history"), 0755)
}

// Entry describes one cached snapshot.
type Entry struct {
	ID       string            `json:"id"`
	Fetched  time.Time         `json:"fetched"`
	Snapshot snapshot.Snapshot `json:"snapshot"`
}

// Save writes snap as the current cache and appends it to the history.
func (s *Store) Save(snap *snapshot.Snapshot, fetched time.Time) error {
	entry := Entry{
		ID:       fmt.Sprintf("snapshot_%d", fetched.Unix()),
		Fetched:  fetched,
		Snapshot: *snap,
	}

	if err := s.writeJSON(filepath.Join(s.baseDir, "snapshot.json"), entry); err != nil {
		return err
	}
	return s.writeJSON(filepath.Join(s.baseDir, "history", entry.ID+".json"), entry)
}

func (s *Store) writeJSON(path string, entry Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(entry)
}

// Latest returns the current cached snapshot.
func (s *Store) Latest() (*Entry, error) {
	return s.readEntry(filepath.Join(s.baseDir, "snapshot.json"))
}

// History lists cached snapshots, newest first.
func (s *Store) History() ([]Entry, error) {
	dir := filepath.Join(s.baseDir, "history")
	names, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, n := range names {
		if n.IsDir() || filepath.Ext(n.Name()) != ".json" {
			continue
		}
		e, err := s.readEntry(filepath.Join(dir, n.Name()))
		if err != nil {
			continue // skip anything unreadable
		}
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Fetched.After(entries[j].Fetched)
	})
	return entries, nil
}

func (s *Store) readEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &e, nil
}
