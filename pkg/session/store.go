package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the bearer token between runs. It never holds
// anything else; all other state is rebuilt from the server.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a single file under the user's config
// directory, the terminal analog of browser-local storage.
type FileStore struct {
	Path string
}

// DefaultTokenPath returns <user config dir>/storectl/token.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "storectl", "token"), nil
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the token; a missing file means no session.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the parent directory if needed. The file
// is user-readable only.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token+"\n"), 0o600)
}

// Clear removes the token file; clearing an absent token is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore is a TokenStore for tests.
type MemoryStore struct {
	Token string
}

func (s *MemoryStore) Load() (string, error) { return s.Token, nil }

func (s *MemoryStore) Save(token string) error {
	s.Token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.Token = ""
	return nil
}
