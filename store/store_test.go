package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cppla/blog/models"
)

func samplePosts() []models.Post {
	return []models.Post{
		{Title: "first", Author: "a", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Text: "one", ImageID: "1.jpg"},
		{Title: "second", Author: "b", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Text: "two", ImageID: "2.jpg"},
	}
}

func TestAt(t *testing.T) {
	posts := samplePosts()
	cases := []struct {
		name  string
		index int
		want  string
		err   error
	}{
		{name: "first", index: 0, want: "first"},
		{name: "last", index: 1, want: "second"},
		{name: "negative", index: -1, err: ErrPostNotFound},
		{name: "equal to length", index: 2, err: ErrPostNotFound},
		{name: "far out of range", index: 100, err: ErrPostNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := At(posts, tc.index)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if got.Title != tc.want {
				t.Fatalf("title = %q, want %q", got.Title, tc.want)
			}
		})
	}
}

func TestAtEmpty(t *testing.T) {
	if _, err := At(nil, 0); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestGetPropagatesStoreError(t *testing.T) {
	boom := errors.New("boom")
	s := PostStoreFunc(func(context.Context) ([]models.Post, error) { return nil, boom })
	if _, err := Get(context.Background(), s, 0); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestGetQueriesStoreEachCall(t *testing.T) {
	calls := 0
	s := PostStoreFunc(func(context.Context) ([]models.Post, error) {
		calls++
		return samplePosts()[:calls], nil
	})
	if _, err := Get(context.Background(), s, 1); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("first call: err = %v, want ErrPostNotFound", err)
	}
	p, err := Get(context.Background(), s, 1)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if p.Title != "second" {
		t.Fatalf("title = %q", p.Title)
	}
}

func TestStaticStoreReturnsCopy(t *testing.T) {
	s := NewStaticStore(samplePosts())
	got, _ := s.Posts(context.Background())
	got[0].Title = "changed"
	again, _ := s.Posts(context.Background())
	if again[0].Title != "first" {
		t.Fatalf("backing slice modified: %q", again[0].Title)
	}
}

func TestSeedPosts(t *testing.T) {
	posts, err := SeedPosts()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) == 0 {
		t.Fatal("no seed posts")
	}
	for i, p := range posts {
		if p.Title == "" || p.Author == "" || p.ImageID == "" || p.Date.IsZero() {
			t.Errorf("seed post %d incomplete: %+v", i, p)
		}
	}
	if got := posts[0].Date.Format("02.01.2006"); got != "10.03.2025" {
		t.Errorf("first seed date = %s", got)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileStore(t *testing.T) {
	path := writeFile(t, `[
		{"title": "T", "author": "A", "date": "2025-03-10", "text": "body", "image_id": "img.jpg"},
		{"title": "U", "author": "B", "date": "2025-01-02T15:04:05Z", "text": "", "image_id": ""}
	]`)

	posts, err := NewFileStore(path).Posts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("len = %d", len(posts))
	}
	want := models.Post{Title: "T", Author: "A", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Text: "body", ImageID: "img.jpg"}
	if posts[0] != want {
		t.Fatalf("post = %+v, want %+v", posts[0], want)
	}
	if posts[1].Date.Year() != 2025 || posts[1].Date.Month() != time.January {
		t.Fatalf("rfc3339 date = %v", posts[1].Date)
	}
}

func TestFileStoreRereadsFile(t *testing.T) {
	path := writeFile(t, `[]`)
	s := NewFileStore(path)
	if posts, _ := s.Posts(context.Background()); len(posts) != 0 {
		t.Fatalf("len = %d", len(posts))
	}
	if err := os.WriteFile(path, []byte(`[{"title":"new","author":"a","date":"2025-03-10"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	posts, err := s.Posts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Title != "new" {
		t.Fatalf("posts = %+v", posts)
	}
}

func TestFileStoreErrors(t *testing.T) {
	cases := map[string]string{
		"missing":  filepath.Join(t.TempDir(), "nope.json"),
		"bad json": writeFile(t, `{`),
		"bad date": writeFile(t, `[{"title":"x","date":"10.03.2025"}]`),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewFileStore(path).Posts(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

type fakeList struct {
	items []string
	err   error
	key   string
}

func (f *fakeList) LRange(_ context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	f.key = key
	return redis.NewStringSliceResult(f.items, f.err)
}

func TestRedisStore(t *testing.T) {
	var items []string
	for _, p := range samplePosts() {
		b, err := encodeRecord(p)
		if err != nil {
			t.Fatal(err)
		}
		items = append(items, string(b))
	}
	fake := &fakeList{items: items}

	posts, err := NewRedisStore(fake, "blog:posts").Posts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if fake.key != "blog:posts" {
		t.Fatalf("key = %q", fake.key)
	}
	want := samplePosts()
	if len(posts) != len(want) {
		t.Fatalf("len = %d", len(posts))
	}
	for i := range want {
		if posts[i] != want[i] {
			t.Errorf("post %d = %+v, want %+v", i, posts[i], want[i])
		}
	}
}

func TestRedisStoreErrors(t *testing.T) {
	if _, err := NewRedisStore(&fakeList{err: redis.Nil}, "k").Posts(context.Background()); !errors.Is(err, redis.Nil) {
		t.Fatalf("err = %v, want redis.Nil", err)
	}
	if _, err := NewRedisStore(&fakeList{items: []string{"not json"}}, "k").Posts(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

// encodeRecord renders p in the record format read by the file and redis stores.
func encodeRecord(p models.Post) ([]byte, error) {
	return json.Marshal(postRecord{
		Title:   p.Title,
		Author:  p.Author,
		Date:    p.Date.Format(dateLayout),
		Text:    p.Text,
		ImageID: p.ImageID,
	})
}
