package consult

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/models"
)

// ratingWindow is how long after a consultation ends the rating prompt may
// still appear
const ratingWindow = 24 * time.Hour

// checkRatingOnce runs the rating-eligibility check at most once per mount
func (c *Controller) checkRatingOnce(ctx context.Context) {
	c.mu.Lock()
	if c.ratingChecked {
		c.mu.Unlock()
		return
	}
	c.ratingChecked = true
	c.mu.Unlock()
	c.checkRating(ctx)
}

// checkRating fetches the consultation history and opens the rating prompt
// for the first consultation that ended without a rating within the last
// 24 hours. Best-effort: failing to prompt for a rating is not a correctness
// issue, so errors are swallowed.
func (c *Controller) checkRating(ctx context.Context) {
	history, err := c.api.ConsultationHistory(ctx)
	if err != nil {
		zap.S().Debugw("rating eligibility check failed", "error", err)
		return
	}

	now := c.clk.Now()
	for _, h := range history {
		if h.Status != models.ConsultationEnded || h.HasRating || h.EndedAt == nil {
			continue
		}
		if now.Sub(*h.EndedAt) > ratingWindow {
			continue
		}

		c.mu.Lock()
		if c.ratingPrompt != nil || !c.started {
			c.mu.Unlock()
			return
		}
		cpy := h
		c.ratingPrompt = &cpy
		c.mu.Unlock()
		c.notify()
		return
	}
}

// RatingPrompt returns the consultation the rating dialog is bound to, or
// nil when the dialog is closed
func (c *Controller) RatingPrompt() *models.Consultation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ratingPrompt == nil {
		return nil
	}
	cpy := *c.ratingPrompt
	return &cpy
}

// DismissRatingPrompt closes the rating dialog without submitting
func (c *Controller) DismissRatingPrompt() {
	c.mu.Lock()
	c.ratingPrompt = nil
	c.mu.Unlock()
	c.notify()
}

// SubmitRating submits the rating for the prompted consultation and closes
// the dialog
func (c *Controller) SubmitRating(ctx context.Context, rating int, comment string) error {
	c.mu.Lock()
	prompt := c.ratingPrompt
	c.mu.Unlock()
	if prompt == nil {
		return errors.New("consult: no rating prompt open")
	}

	err := c.api.RateConsultation(ctx, prompt.ID, models.RatingRequest{
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.ratingPrompt = nil
	c.mu.Unlock()
	c.notify()
	return nil
}
