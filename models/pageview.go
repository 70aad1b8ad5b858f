package models

import "time"

// PageView counts successful GET requests to one path on one local day.
type PageView struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"uniqueIndex:idx_pv_date_path;type:date;not null"`
	Path      string    `gorm:"uniqueIndex:idx_pv_date_path;size:255;not null"`
	Count     int64     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
