package entity

import "time"

// MediaItem is one photo or video in the gallery, backed by an object in the
// media bucket.
type MediaItem struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
