package models

import "time"

// Patient holds the structure for a patient record in the admin directory
type Patient struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PasswordResetRequest holds the payload for an admin-initiated
// patient password reset
type PasswordResetRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8,max=128"`
}
