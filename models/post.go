package models

import "time"

// Post is a single blog entry as shown on the posts list and post pages.
type Post struct {
	ID      uint      `gorm:"primaryKey" json:"-"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Author  string    `gorm:"size:128;not null" json:"author"`
	Date    time.Time `gorm:"type:date;index;not null" json:"date"`
	Text    string    `gorm:"type:text;not null" json:"text"`
	ImageID string    `gorm:"size:512" json:"image_id"`
}
