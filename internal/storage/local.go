package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage grava sob BaseDir e serve via rota estática /storage.
type LocalStorage struct {
	BaseDir string
}

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) Save(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	// MkdirAll é idempotente; seguro sob corrida entre requisições
	target := filepath.Join(s.BaseDir, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return "/storage/" + dir + "/" + name, nil
}

var _ Storage = (*LocalStorage)(nil)
