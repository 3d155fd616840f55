// Package tokencache persists the session bearer token between runs, the
// stand-in for browser local storage.
package tokencache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/secureballot/secureballot/internal/core/ports"
)

type fileCache struct {
	path string
}

func NewFileCache(path string) ports.TokenCache {
	return &fileCache{path: path}
}

func (c *fileCache) Load() (string, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token cache: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *fileCache) Store(token string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token cache dir: %w", err)
	}
	if err := os.WriteFile(c.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}
	return nil
}

func (c *fileCache) Clear() error {
	err := os.Remove(c.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear token cache: %w", err)
	}
	return nil
}
