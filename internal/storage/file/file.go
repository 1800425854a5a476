package file

import (
	"fmt"
	"os"
	"path/filepath"

	"eventAdmin/internal/storage"
)

// Store persists each collection as one JSON file under a data directory.
// Writes go through a temp file and rename so readers never see a partial
// document.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	const op = "storage.file.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	const op = "storage.file.Get"

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func (s *Store) Set(key string, value []byte) error {
	const op = "storage.file.Set"

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
