package store

import (
	"context"
	"fmt"
	"os"

	"github.com/cppla/blog/models"
)

// FileStore reads a JSON array of post records from disk on every call, so
// edits to the file show up on the next request.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Posts(_ context.Context) ([]models.Post, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}
	posts, err := decodeRecords(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return posts, nil
}
