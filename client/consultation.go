package client

import (
	"context"
	"net/http"

	"github.com/curalink/telehealth-client/models"
)

// ActiveConsultations returns the consultations currently in progress for
// the authenticated patient
func (c *Client) ActiveConsultations(ctx context.Context) ([]models.Consultation, error) {
	var res []models.Consultation
	if err := c.do(ctx, http.MethodGet, "/consultation/active", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ConsultationHistory returns all past and present consultations
func (c *Client) ConsultationHistory(ctx context.Context) ([]models.Consultation, error) {
	var res []models.Consultation
	if err := c.do(ctx, http.MethodGet, "/consultation/history", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Messages returns the full message thread of a consultation. There is no
// delta fetch; callers always receive the entire list.
func (c *Client) Messages(ctx context.Context, consultationID string) ([]models.Message, error) {
	var res []models.Message
	if err := c.do(ctx, http.MethodGet, "/consultation/"+consultationID+"/messages", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SendMessage posts a message, optionally with attached document ids
func (c *Client) SendMessage(ctx context.Context, consultationID string, req models.SendMessageRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/consultation/"+consultationID+"/messages", nil, req, nil)
}

// MarkViewing sends a presence ping for read/online-status signaling
func (c *Client) MarkViewing(ctx context.Context, consultationID string) error {
	return c.do(ctx, http.MethodPost, "/consultation/"+consultationID+"/viewing", nil, nil, nil)
}

// EndConsultation terminates an active consultation
func (c *Client) EndConsultation(ctx context.Context, consultationID string) error {
	return c.do(ctx, http.MethodPost, "/consultation/"+consultationID+"/end", nil, nil, nil)
}

// RateConsultation submits a rating for an ended consultation
func (c *Client) RateConsultation(ctx context.Context, consultationID string, req models.RatingRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/consultation/"+consultationID+"/rate", nil, req, nil)
}

// RequestConsultation creates a consultation request for a doctor to accept
func (c *Client) RequestConsultation(ctx context.Context, req models.ConsultationRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/consultation/request", nil, req, nil)
}
