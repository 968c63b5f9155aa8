package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/models"
)

// Dashboard fetches the aggregate counts for the admin landing view
type Dashboard struct {
	API client.API

	stats *models.DashboardStats
}

// Load fetches the dashboard stats
func (d *Dashboard) Load(ctx context.Context) error {
	stats, err := d.API.AdminDashboardStats(ctx)
	if err != nil {
		zap.S().Errorw("failed to load dashboard stats", "error", err)
		return err
	}
	d.stats = stats
	return nil
}

// Stats returns the stats from the last successful load, or nil
func (d *Dashboard) Stats() *models.DashboardStats {
	return d.stats
}
