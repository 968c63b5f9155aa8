package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/models"
)

// PatientsTable is the admin patient directory
type PatientsTable struct {
	API client.API

	rows []models.Patient
}

// Load fetches the patient list
func (t *PatientsTable) Load(ctx context.Context) error {
	rows, err := t.API.AdminListPatients(ctx)
	if err != nil {
		zap.S().Errorw("failed to load patients", "error", err)
		return err
	}
	t.rows = rows
	return nil
}

// Rows returns the rows from the last successful load
func (t *PatientsTable) Rows() []models.Patient {
	return t.rows
}

// Delete removes a patient record and reloads the list
func (t *PatientsTable) Delete(ctx context.Context, id string) error {
	if err := t.API.AdminDeletePatient(ctx, id); err != nil {
		return err
	}
	return t.Load(ctx)
}

// ResetPassword sets a new password for a patient and reloads the list
func (t *PatientsTable) ResetPassword(ctx context.Context, id, newPassword string) error {
	req := models.PasswordResetRequest{NewPassword: newPassword}
	if err := t.API.AdminResetPatientPassword(ctx, id, req); err != nil {
		return err
	}
	return t.Load(ctx)
}
