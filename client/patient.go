package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/curalink/telehealth-client/models"
)

// PatientDocuments returns the authenticated patient's document references.
// Zero values in the query omit the corresponding parameter.
func (c *Client) PatientDocuments(ctx context.Context, q models.DocumentQuery) ([]models.Document, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	var res []models.Document
	if err := c.do(ctx, http.MethodGet, "/patient/documents", params, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
