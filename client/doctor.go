package client

import (
	"context"
	"net/http"

	"github.com/curalink/telehealth-client/models"
)

// ListDoctors returns the public doctor directory
func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var res []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetDoctor returns a single public doctor profile
func (c *Client) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	var res models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/"+id, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
