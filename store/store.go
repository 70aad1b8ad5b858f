// Package store provides the ordered sequences of posts the site renders.
//
// Every implementation is queried fresh on each request; the order of the
// returned slice is the display order and the index space of /posts/{index}.
package store

import (
	"context"
	"errors"

	"github.com/cppla/blog/models"
)

// ErrPostNotFound is returned when an index falls outside the sequence.
var ErrPostNotFound = errors.New("post not found")

// PostStore returns the current ordered sequence of posts.
type PostStore interface {
	Posts(ctx context.Context) ([]models.Post, error)
}

// PostStoreFunc adapts a plain function to PostStore.
type PostStoreFunc func(ctx context.Context) ([]models.Post, error)

// Posts calls f(ctx).
func (f PostStoreFunc) Posts(ctx context.Context) ([]models.Post, error) {
	return f(ctx)
}

// Get returns the post at index of the sequence s currently holds.
func Get(ctx context.Context, s PostStore, index int) (models.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return models.Post{}, err
	}
	return At(posts, index)
}

// At returns posts[index] or ErrPostNotFound.
func At(posts []models.Post, index int) (models.Post, error) {
	if index < 0 || index >= len(posts) {
		return models.Post{}, ErrPostNotFound
	}
	return posts[index], nil
}

// StaticStore serves a fixed slice of posts.
type StaticStore struct {
	posts []models.Post
}

// NewStaticStore returns a store that always yields a copy of posts.
func NewStaticStore(posts []models.Post) *StaticStore {
	return &StaticStore{posts: posts}
}

// Posts returns a copy so callers cannot reorder the backing slice.
func (s *StaticStore) Posts(_ context.Context) ([]models.Post, error) {
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}
