package consult

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/models"
)

// RefreshDocuments re-fetches the patient document list. While the share-all
// toggle is on, the per-request selection is recomputed to mirror the new
// list.
func (c *Controller) RefreshDocuments(ctx context.Context) {
	docs, err := c.api.PatientDocuments(ctx, c.opts.DocumentQuery)
	if err != nil {
		zap.S().Debugw("document refresh failed", "error", err)
		return
	}

	c.mu.Lock()
	c.documents = docs
	if c.shareAll {
		c.requestDocs = allIDs(docs)
	}
	c.mu.Unlock()
	c.notify()
}

// Documents returns the last fetched document list
func (c *Controller) Documents() []models.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Document(nil), c.documents...)
}

// SetShareAll turns the share-all toggle on or off. Toggling on replaces the
// per-request selection with every current document id; toggling off leaves
// the selection as it stands for manual editing.
func (c *Controller) SetShareAll(on bool) {
	c.mu.Lock()
	c.shareAll = on
	if on {
		c.requestDocs = allIDs(c.documents)
	}
	c.mu.Unlock()
	c.notify()
}

// ShareAll reports whether the share-all toggle is on
func (c *Controller) ShareAll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shareAll
}

// ToggleRequestDocument adds or removes a document id from the per-request
// selection. Manual edits drop the share-all toggle.
func (c *Controller) ToggleRequestDocument(id string) {
	c.mu.Lock()
	c.shareAll = false
	toggle(c.requestDocs, id)
	c.mu.Unlock()
	c.notify()
}

// RequestSelection returns the per-request document ids in stable order
func (c *Controller) RequestSelection() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sortedIDs(c.requestDocs)
}

// ClearRequestSelection resets the per-request selection and the share-all
// toggle, for a cancelled dialog
func (c *Controller) ClearRequestSelection() {
	c.mu.Lock()
	c.shareAll = false
	c.requestDocs = map[string]struct{}{}
	c.mu.Unlock()
	c.notify()
}

// ToggleMessageDocument adds or removes a document id from the ephemeral
// per-message selection
func (c *Controller) ToggleMessageDocument(id string) {
	c.mu.Lock()
	toggle(c.messageDocs, id)
	c.mu.Unlock()
	c.notify()
}

// MessageSelection returns the per-message document ids in stable order
func (c *Controller) MessageSelection() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sortedIDs(c.messageDocs)
}

// RequestConsultation submits a new consultation request for the given
// doctor, attaching the per-request document selection. The selection is
// cleared once the request succeeds.
func (c *Controller) RequestConsultation(ctx context.Context, doctorID, symptoms string) error {
	c.mu.Lock()
	docIDs := sortedIDs(c.requestDocs)
	c.mu.Unlock()

	err := c.api.RequestConsultation(ctx, models.ConsultationRequest{
		DoctorID:    doctorID,
		Symptoms:    symptoms,
		DocumentIDs: docIDs,
	})
	if err != nil {
		return err
	}

	c.ClearRequestSelection()
	return nil
}

func toggle(set map[string]struct{}, id string) {
	if _, ok := set[id]; ok {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
}

func allIDs(docs []models.Document) map[string]struct{} {
	ids := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		ids[d.ID] = struct{}{}
	}
	return ids
}

func sortedIDs(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
