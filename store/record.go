package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cppla/blog/models"
)

// dateLayout is the on-disk representation of a post date.
const dateLayout = "2006-01-02"

// postRecord is the JSON shape shared by the file, seed and redis stores.
type postRecord struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Text    string `json:"text"`
	ImageID string `json:"image_id"`
}

func (r postRecord) toPost() (models.Post, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return models.Post{}, fmt.Errorf("post %q: %w", r.Title, err)
	}
	return models.Post{
		Title:   r.Title,
		Author:  r.Author,
		Date:    date,
		Text:    r.Text,
		ImageID: r.ImageID,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// decodeRecords parses a JSON array of post records.
func decodeRecords(b []byte) ([]models.Post, error) {
	var records []postRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	posts := make([]models.Post, 0, len(records))
	for _, r := range records {
		p, err := r.toPost()
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func decodeRecord(b []byte) (models.Post, error) {
	var r postRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return models.Post{}, fmt.Errorf("decode post: %w", err)
	}
	return r.toPost()
}
