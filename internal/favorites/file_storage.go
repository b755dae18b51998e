package favorites

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/workoutexplorer/pkg"

	log "github.com/sirupsen/logrus"
)

var _ Storage = (*FileStorage)(nil)

// FileStorage keeps every key in its own JSON file under rootPath.
type FileStorage struct {
	rootPath string
}

func NewFileStorage(rootPath string) (*FileStorage, error) {
	exists, err := pkg.PathExists(rootPath, true)
	if err != nil {
		return nil, fmt.Errorf("check favorites dir: %w", err)
	}
	if !exists {
		if err := os.MkdirAll(rootPath, 0o755); err != nil {
			return nil, fmt.Errorf("create favorites dir: %w", err)
		}
		log.Debugf("favorites dir created: %s", rootPath)
	}

	return &FileStorage{
		rootPath: rootPath,
	}, nil
}

func (fs *FileStorage) Get(_ context.Context, key string) ([]byte, error) {
	path, err := fs.keyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// Set replaces the value of key; the file is written to a temp file first and
// renamed, so a crash never leaves a half-written value behind.
func (fs *FileStorage) Set(_ context.Context, key string, value []byte) error {
	path, err := fs.keyPath(key)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(fs.rootPath, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(value); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (fs *FileStorage) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid key: [%s]", key)
	}
	return filepath.Join(fs.rootPath, key+".json"), nil
}
