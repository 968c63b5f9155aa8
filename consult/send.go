package consult

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/models"
)

// SendStatus is the delivery state of an outbound message
type SendStatus int

const (
	// SendPending means the send call has not completed yet
	SendPending SendStatus = iota
	// SendConfirmed means the backend accepted the message
	SendConfirmed
	// SendUnknown means the send hit a transport-level failure: the message
	// may have been accepted even though no response was observed
	SendUnknown
)

// Outbound is a locally originated message and its delivery state
type Outbound struct {
	LocalID string
	Content string
	Status  SendStatus
	SentAt  time.Time
}

// Send posts a message to the focused consultation with whatever documents
// are in the per-message selection, which is cleared on every attempt.
//
// A transport-level failure is ambiguous after a write: the message is kept
// with status SendUnknown, no error is returned, and a single reconciliation
// re-fetch is scheduled. A server rejection is authoritative and returned to
// the caller.
func (c *Controller) Send(ctx context.Context, content string) error {
	c.mu.Lock()
	if c.selected == nil {
		c.mu.Unlock()
		return errors.New("consult: no consultation selected")
	}
	id := c.selected.ID
	docIDs := sortedIDs(c.messageDocs)
	c.messageDocs = map[string]struct{}{}
	ob := Outbound{
		LocalID: uuid.New().String(),
		Content: content,
		Status:  SendPending,
		SentAt:  c.clk.Now(),
	}
	c.outbound = append(c.outbound, ob)
	c.mu.Unlock()
	c.notify()

	err := c.api.SendMessage(ctx, id, models.SendMessageRequest{
		Content:     content,
		DocumentIDs: docIDs,
	})
	switch {
	case err == nil:
		c.setOutboundStatus(ob.LocalID, SendConfirmed)
		c.refreshMessages(ctx, id)
		return nil
	case client.IsTransportError(err):
		zap.S().Debugw("ambiguous send failure, scheduling reconciliation",
			"consultation", id,
			"error", err,
		)
		c.setOutboundStatus(ob.LocalID, SendUnknown)
		c.scheduleReconcile(id)
		return nil
	default:
		c.dropOutbound(ob.LocalID)
		return err
	}
}

// Outbound returns the locally originated messages not yet observed in a
// fetched thread
func (c *Controller) Outbound() []Outbound {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Outbound(nil), c.outbound...)
}

// scheduleReconcile arms the one-shot reconciliation re-fetch. At most one
// reconciliation is pending at a time.
func (c *Controller) scheduleReconcile(consultationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reconcilePending || !c.started {
		return
	}
	c.reconcilePending = true
	c.reconcileTimer = time.AfterFunc(c.opts.SendReconcileDelay, func() {
		c.mu.Lock()
		c.reconcilePending = false
		c.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		c.refreshMessages(ctx, consultationID)
	})
}

func (c *Controller) setOutboundStatus(localID string, status SendStatus) {
	c.mu.Lock()
	for i := range c.outbound {
		if c.outbound[i].LocalID == localID {
			c.outbound[i].Status = status
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) dropOutbound(localID string) {
	c.mu.Lock()
	kept := c.outbound[:0]
	for _, ob := range c.outbound {
		if ob.LocalID != localID {
			kept = append(kept, ob)
		}
	}
	c.outbound = kept
	c.mu.Unlock()
	c.notify()
}

// reconcileOutboundLocked drops outbound entries that are now visible in the
// fetched thread, confirming SendUnknown entries by observation. Caller must
// hold c.mu.
func (c *Controller) reconcileOutboundLocked(msgs []models.Message) {
	if len(c.outbound) == 0 {
		return
	}
	kept := c.outbound[:0]
	for _, ob := range c.outbound {
		if ob.Status == SendPending || !threadContains(msgs, ob.Content) {
			kept = append(kept, ob)
		}
	}
	c.outbound = kept
}

func threadContains(msgs []models.Message, content string) bool {
	for _, m := range msgs {
		if m.Sender == models.SenderPatient && m.Content == content {
			return true
		}
	}
	return false
}
