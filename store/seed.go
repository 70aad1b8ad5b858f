package store

import (
	_ "embed"
	"fmt"

	"github.com/cppla/blog/models"
)

//go:embed seed/posts.json
var seedJSON []byte

// SeedPosts returns the demo posts bundled with the binary.
func SeedPosts() ([]models.Post, error) {
	posts, err := decodeRecords(seedJSON)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return posts, nil
}

// NewSeedStore returns a StaticStore over SeedPosts.
func NewSeedStore() (*StaticStore, error) {
	posts, err := SeedPosts()
	if err != nil {
		return nil, err
	}
	return NewStaticStore(posts), nil
}
