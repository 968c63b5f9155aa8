package models

import "time"

// PasswordReset statuses as stored by the backend queue
const (
	ResetPending  = "pending"
	ResetApproved = "approved"
	ResetDenied   = "denied"
)

// PasswordReset holds the structure for an entry in the password reset
// request queue
type PasswordReset struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
}

// ResolvePasswordResetRequest holds the payload for approving or denying
// a password reset request
type ResolvePasswordResetRequest struct {
	Status string `json:"status" validate:"required,oneof=approved denied"`
}
