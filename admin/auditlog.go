package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/models"
)

// AuditLogTable is the read-only audit trail viewer
type AuditLogTable struct {
	API client.API

	rows []models.AuditLog
}

// Load fetches the audit trail
func (t *AuditLogTable) Load(ctx context.Context) error {
	rows, err := t.API.AdminAuditLogs(ctx)
	if err != nil {
		zap.S().Errorw("failed to load audit logs", "error", err)
		return err
	}
	t.rows = rows
	return nil
}

// Rows returns the rows from the last successful load
func (t *AuditLogTable) Rows() []models.AuditLog {
	return t.rows
}
