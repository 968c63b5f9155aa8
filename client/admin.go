package client

import (
	"context"
	"net/http"

	"github.com/curalink/telehealth-client/models"
)

// AdminDashboardStats returns the aggregate counts for the admin dashboard
func (c *Client) AdminDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var res models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AdminListDoctors returns the full doctor directory, including unverified
// doctors hidden from the public listing
func (c *Client) AdminListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var res []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/admin/doctors", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// AdminCreateDoctor adds a doctor to the directory
func (c *Client) AdminCreateDoctor(ctx context.Context, req models.DoctorRequest) (*models.Doctor, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var res models.Doctor
	if err := c.do(ctx, http.MethodPost, "/admin/doctors", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AdminUpdateDoctor updates an existing doctor
func (c *Client) AdminUpdateDoctor(ctx context.Context, id string, req models.DoctorRequest) (*models.Doctor, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var res models.Doctor
	if err := c.do(ctx, http.MethodPatch, "/admin/doctors/"+id, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AdminDeleteDoctor removes a doctor from the directory
func (c *Client) AdminDeleteDoctor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/doctors/"+id, nil, nil, nil)
}

// AdminListPatients returns the patient directory
func (c *Client) AdminListPatients(ctx context.Context) ([]models.Patient, error) {
	var res []models.Patient
	if err := c.do(ctx, http.MethodGet, "/admin/patients", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// AdminDeletePatient removes a patient record
func (c *Client) AdminDeletePatient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/patients/"+id, nil, nil, nil)
}

// AdminResetPatientPassword sets a new password for a patient
func (c *Client) AdminResetPatientPassword(ctx context.Context, id string, req models.PasswordResetRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, "/admin/patients/"+id+"/password", nil, req, nil)
}

// AdminListPasswordResets returns the password reset request queue
func (c *Client) AdminListPasswordResets(ctx context.Context) ([]models.PasswordReset, error) {
	var res []models.PasswordReset
	if err := c.do(ctx, http.MethodGet, "/admin/password-resets", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// AdminResolvePasswordReset approves or denies a password reset request
func (c *Client) AdminResolvePasswordReset(ctx context.Context, id string, req models.ResolvePasswordResetRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, "/admin/password-resets/"+id, nil, req, nil)
}

// AdminAuditLogs returns the audit trail
func (c *Client) AdminAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	var res []models.AuditLog
	if err := c.do(ctx, http.MethodGet, "/admin/audit-logs", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
