package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/models"
)

// PasswordResetsTable is the password reset approval queue
type PasswordResetsTable struct {
	API client.API

	rows []models.PasswordReset
}

// Load fetches the reset queue
func (t *PasswordResetsTable) Load(ctx context.Context) error {
	rows, err := t.API.AdminListPasswordResets(ctx)
	if err != nil {
		zap.S().Errorw("failed to load password resets", "error", err)
		return err
	}
	t.rows = rows
	return nil
}

// Rows returns the rows from the last successful load
func (t *PasswordResetsTable) Rows() []models.PasswordReset {
	return t.rows
}

// Approve marks a reset request approved and reloads the queue
func (t *PasswordResetsTable) Approve(ctx context.Context, id string) error {
	return t.resolve(ctx, id, models.ResetApproved)
}

// Deny marks a reset request denied and reloads the queue
func (t *PasswordResetsTable) Deny(ctx context.Context, id string) error {
	return t.resolve(ctx, id, models.ResetDenied)
}

func (t *PasswordResetsTable) resolve(ctx context.Context, id, status string) error {
	req := models.ResolvePasswordResetRequest{Status: status}
	if err := t.API.AdminResolvePasswordReset(ctx, id, req); err != nil {
		return err
	}
	return t.Load(ctx)
}
