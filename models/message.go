package models

import "time"

// Message sender roles
const (
	SenderPatient = "patient"
	SenderDoctor  = "doctor"
)

// Message holds the structure for a single chat message in a consultation
type Message struct {
	ID             string     `json:"id"`
	ConsultationID string     `json:"consultationId"`
	Sender         string     `json:"sender"`
	Content        string     `json:"content"`
	SentAt         time.Time  `json:"sentAt"`
	Documents      []Document `json:"documents,omitempty"`
}

// SendMessageRequest holds the payload for posting a message to a consultation
type SendMessageRequest struct {
	Content     string   `json:"content" validate:"required,max=4000"`
	DocumentIDs []string `json:"documentIds,omitempty"`
}
