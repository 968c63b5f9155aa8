package client

import (
	"context"

	"github.com/curalink/telehealth-client/models"
)

// API is the full set of backend operations. Controllers depend on this
// interface rather than the concrete Client so tests can mock the backend.
type API interface {
	// Admin dashboard
	AdminDashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// Admin doctor directory
	AdminListDoctors(ctx context.Context) ([]models.Doctor, error)
	AdminCreateDoctor(ctx context.Context, req models.DoctorRequest) (*models.Doctor, error)
	AdminUpdateDoctor(ctx context.Context, id string, req models.DoctorRequest) (*models.Doctor, error)
	AdminDeleteDoctor(ctx context.Context, id string) error

	// Admin patient directory
	AdminListPatients(ctx context.Context) ([]models.Patient, error)
	AdminDeletePatient(ctx context.Context, id string) error
	AdminResetPatientPassword(ctx context.Context, id string, req models.PasswordResetRequest) error

	// Password reset queue
	AdminListPasswordResets(ctx context.Context) ([]models.PasswordReset, error)
	AdminResolvePasswordReset(ctx context.Context, id string, req models.ResolvePasswordResetRequest) error

	// Audit trail
	AdminAuditLogs(ctx context.Context) ([]models.AuditLog, error)

	// Public doctor directory
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)

	// Consultations
	ActiveConsultations(ctx context.Context) ([]models.Consultation, error)
	ConsultationHistory(ctx context.Context) ([]models.Consultation, error)
	Messages(ctx context.Context, consultationID string) ([]models.Message, error)
	SendMessage(ctx context.Context, consultationID string, req models.SendMessageRequest) error
	MarkViewing(ctx context.Context, consultationID string) error
	EndConsultation(ctx context.Context, consultationID string) error
	RateConsultation(ctx context.Context, consultationID string, req models.RatingRequest) error
	RequestConsultation(ctx context.Context, req models.ConsultationRequest) error

	// Patient documents
	PatientDocuments(ctx context.Context, q models.DocumentQuery) ([]models.Document, error)
}

var _ API = (*Client)(nil)
