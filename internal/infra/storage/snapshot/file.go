package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore файловый бэкенд: один снапшот — один JSON-файл в каталоге данных.
// Запись выполняется во временный файл с последующим rename, чтобы при падении
// процесса на диске не оставался наполовину записанный снапшот.
type FileStore struct {
	dir string
}

// NewFileStore создает файловое хранилище в указанном каталоге
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dir %s: %v", ErrSave, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Load читает снапшот по ключу
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, key, err)
	}
	return data, nil
}

// Save атомарно записывает снапшот по ключу
func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", ErrSave, key, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrSave, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", ErrSave, key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename %s: %v", ErrSave, key, err)
	}

	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
