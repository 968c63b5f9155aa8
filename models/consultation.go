package models

import "time"

// ConsultationStatus represents the lifecycle state of a consultation
type ConsultationStatus string

const (
	ConsultationActive ConsultationStatus = "active"
	ConsultationEnded  ConsultationStatus = "ended"
)

// Consultation holds the structure for a consultation session as returned
// by the consultation endpoints
type Consultation struct {
	ID         string             `json:"id"`
	DoctorName string             `json:"doctorName"`
	StartedAt  time.Time          `json:"startedAt"`
	Status     ConsultationStatus `json:"status"`
	HasRating  bool               `json:"hasRating,omitempty"`
	EndedAt    *time.Time         `json:"endedAt,omitempty"`
}

// ConsultationRequest holds the payload for requesting a new consultation
type ConsultationRequest struct {
	DoctorID    string   `json:"doctorId" validate:"required"`
	Symptoms    string   `json:"symptoms" validate:"required,max=2000"`
	DocumentIDs []string `json:"documentIds,omitempty"`
}

// RatingRequest holds the payload for rating an ended consultation
type RatingRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=1000"`
}
