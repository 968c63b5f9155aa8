package models

import "time"

// Doctor holds the structure for a doctor profile as returned by both the
// public directory and the admin directory
type Doctor struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
	LicenseNumber  string    `json:"licenseNumber,omitempty"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DoctorRequest holds the payload for creating or updating a doctor
// through the admin directory
type DoctorRequest struct {
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	LicenseNumber  string `json:"licenseNumber,omitempty" validate:"max=50"`
}
