package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mark3labs/themeswitch/internal/logger"
)

const prefsFile = "prefs.json"

// FileStore keeps preferences in <dataDir>/prefs.json.
//
// The document is re-read on every call, so a second process writing the same
// file becomes visible on the next Read. Concurrent writers race; the last
// write wins.
type FileStore struct {
	mu      sync.Mutex
	dataDir string
}

// NewFileStore returns a FileStore rooted at dataDir. The directory is created
// lazily on first write.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dataDir, prefsFile)
}

func (s *FileStore) Read(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	v, ok := values[key]
	return v, ok
}

func (s *FileStore) Write(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	values[key] = value
	if err := s.save(values); err != nil {
		logger.Warn("Failed to write preference %s: %v", key, err)
	}
}

func (s *FileStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.load()
	if _, ok := values[key]; !ok {
		return
	}
	delete(values, key)
	if err := s.save(values); err != nil {
		logger.Warn("Failed to delete preference %s: %v", key, err)
	}
}

// load reads the document. A missing or unreadable file is an empty document.
func (s *FileStore) load() map[string]string {
	values := map[string]string{}
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read preferences file: %v", err)
		}
		return values
	}

	if err := json.Unmarshal(data, &values); err != nil {
		logger.Warn("Failed to parse preferences JSON: %v", err)
		return map[string]string{}
	}
	return values
}

func (s *FileStore) save(values map[string]string) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}

	logger.Debug("Preferences saved to %s", s.Path())
	return nil
}
