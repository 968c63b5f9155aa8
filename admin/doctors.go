// Package admin holds the resource table controllers behind the admin
// views. Every table follows one shape: fetch the full list, offer row
// actions that call a single-purpose API method and then re-fetch, so the
// table always reflects the last successful fetch.
package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/models"
)

// DoctorsTable is the admin doctor directory
type DoctorsTable struct {
	API client.API

	rows []models.Doctor
}

// Load fetches the doctor list
func (t *DoctorsTable) Load(ctx context.Context) error {
	rows, err := t.API.AdminListDoctors(ctx)
	if err != nil {
		zap.S().Errorw("failed to load doctors", "error", err)
		return err
	}
	t.rows = rows
	return nil
}

// Rows returns the rows from the last successful load
func (t *DoctorsTable) Rows() []models.Doctor {
	return t.rows
}

// Create adds a doctor and reloads the list
func (t *DoctorsTable) Create(ctx context.Context, req models.DoctorRequest) error {
	if _, err := t.API.AdminCreateDoctor(ctx, req); err != nil {
		return err
	}
	return t.Load(ctx)
}

// Update edits a doctor and reloads the list
func (t *DoctorsTable) Update(ctx context.Context, id string, req models.DoctorRequest) error {
	if _, err := t.API.AdminUpdateDoctor(ctx, id, req); err != nil {
		return err
	}
	return t.Load(ctx)
}

// Delete removes a doctor and reloads the list
func (t *DoctorsTable) Delete(ctx context.Context, id string) error {
	if err := t.API.AdminDeleteDoctor(ctx, id); err != nil {
		return err
	}
	return t.Load(ctx)
}
