package models

import "time"

// Document holds the structure for a patient document reference
type Document struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"createdAt"`
	Size        int64     `json:"size"`
	DownloadURL string    `json:"downloadUrl"`
}

// DocumentQuery holds the optional query parameters for the document listing.
// Zero values omit the corresponding parameter.
type DocumentQuery struct {
	Limit int
	Sort  string
}
