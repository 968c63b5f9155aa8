package consult

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/clock"
	"github.com/curalink/telehealth-client/models"
)

// State is the coarse lifecycle state of the consultation view
type State int

const (
	// StateLoading means the initial fetches are still in flight
	StateLoading State = iota
	// StateIdle means no active consultation is selected
	StateIdle
	// StateInSession means an active consultation is focused and its
	// messages are displayed
	StateInSession
)

// requestTimeout bounds every network call issued from a background job
const requestTimeout = 10 * time.Second

// Options tunes the controller timings. Zero values take the defaults.
type Options struct {
	// PollInterval is the cadence of the recurring refresh, default 2s
	PollInterval time.Duration
	// RatingCheckDelay is how long to wait after ending a consultation
	// before looking for a rating prompt, letting backend state settle,
	// default 1s
	RatingCheckDelay time.Duration
	// SendReconcileDelay is how long to wait before the reconciliation
	// re-fetch after an ambiguous send failure, default 1500ms
	SendReconcileDelay time.Duration
	// DocumentQuery is passed to the patient document listing
	DocumentQuery models.DocumentQuery
	// OnUpdate, when set, is invoked after every state change. It is called
	// without the controller lock held.
	OnUpdate func()
}

func (o *Options) applyDefaults() {
	if o.PollInterval <= 0 {
		o.PollInterval = 2 * time.Second
	}
	if o.RatingCheckDelay <= 0 {
		o.RatingCheckDelay = time.Second
	}
	if o.SendReconcileDelay <= 0 {
		o.SendReconcileDelay = 1500 * time.Millisecond
	}
}

// Controller drives a single consultation view: it issues the initial
// fetches, runs the recurring poll while started, tracks the focused
// consultation and its message thread, and manages the document-sharing
// selections and the post-session rating prompt.
//
// Responses are sequence-stamped per resource and applied only when they are
// the newest issued for that resource, so a slow stale response can never
// overwrite fresher state.
type Controller struct {
	api  client.API
	clk  clock.Clock
	opts Options

	mu      sync.Mutex
	started bool
	state   State

	doctors   []models.Doctor
	documents []models.Document
	active    []models.Consultation
	selected  *models.Consultation
	messages  []models.Message
	outbound  []Outbound

	activeSeq       uint64
	activeApplied   uint64
	messagesSeq     uint64
	messagesApplied uint64

	ratingChecked bool
	ratingPrompt  *models.Consultation
	ratingTimer   *time.Timer

	shareAll    bool
	requestDocs map[string]struct{}
	messageDocs map[string]struct{}

	reconcilePending bool
	reconcileTimer   *time.Timer

	poller *poller
}

// New returns a Controller bound to the given API. A nil clk uses the wall
// clock.
func New(api client.API, clk clock.Clock, opts Options) *Controller {
	if clk == nil {
		clk = clock.New()
	}
	opts.applyDefaults()
	return &Controller{
		api:         api,
		clk:         clk,
		opts:        opts,
		state:       StateLoading,
		requestDocs: map[string]struct{}{},
		messageDocs: map[string]struct{}{},
	}
}

// Start performs the initial fetches, selects the first active consultation
// when nothing is selected yet, arms the recurring poll and kicks off the
// once-per-mount rating check. It must be balanced by Stop.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return errors.New("consult: controller already started")
	}
	c.started = true
	c.state = StateLoading
	c.mu.Unlock()

	// the doctor directory and document list are ancillary: a failure
	// leaves them empty but does not block the session view
	if doctors, err := c.api.ListDoctors(ctx); err == nil {
		c.mu.Lock()
		c.doctors = doctors
		c.mu.Unlock()
	} else {
		zap.S().Warnw("failed to fetch doctor directory", "error", err)
	}
	c.RefreshDocuments(ctx)

	list, err := c.api.ActiveConsultations(ctx)
	if err != nil {
		zap.S().Warnw("failed to fetch active consultations", "error", err)
	}

	var selectedID string
	c.mu.Lock()
	c.activeApplied = atomic.AddUint64(&c.activeSeq, 1)
	c.active = list
	if len(list) > 0 && c.selected == nil {
		first := list[0]
		c.selected = &first
		c.state = StateInSession
		selectedID = first.ID
	} else {
		c.state = StateIdle
	}
	c.mu.Unlock()
	c.notify()

	if selectedID != "" {
		c.refreshMessages(ctx, selectedID)
		c.ping(ctx, selectedID)
	}

	go func() {
		rctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		c.checkRatingOnce(rctx)
	}()

	c.mu.Lock()
	// Stop may have run while the mount fetches were in flight; arming the
	// poller then would leave a timer nothing ever stops
	if c.started {
		c.poller = newPoller(c.opts.PollInterval, c.pollOnce)
		c.poller.start()
	}
	c.mu.Unlock()
	return nil
}

// Stop cancels the recurring poll and any scheduled one-shot checks. After
// Stop returns, in-flight responses are discarded instead of applied.
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return
	}
	c.started = false
	p := c.poller
	c.poller = nil
	if c.ratingTimer != nil {
		c.ratingTimer.Stop()
		c.ratingTimer = nil
	}
	if c.reconcileTimer != nil {
		c.reconcileTimer.Stop()
		c.reconcileTimer = nil
	}
	c.mu.Unlock()

	if p != nil {
		p.stop()
	}
	zap.S().Debug("consult controller stopped")
}

// pollOnce is one tick of the recurring refresh: the active list is always
// re-fetched; when a consultation is focused its messages are re-fetched and
// a presence ping is sent. Overlapping ticks are skipped by the poller.
func (c *Controller) pollOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	c.mu.Lock()
	var selectedID string
	if c.selected != nil {
		selectedID = c.selected.ID
	}
	c.mu.Unlock()

	c.refreshActive(ctx)
	if selectedID != "" {
		c.refreshMessages(ctx, selectedID)
		c.ping(ctx, selectedID)
	}
}

// refreshActive re-fetches the active-consultation list and applies it if it
// is still the newest response for that resource
func (c *Controller) refreshActive(ctx context.Context) {
	seq := atomic.AddUint64(&c.activeSeq, 1)
	list, err := c.api.ActiveConsultations(ctx)
	if err != nil {
		zap.S().Debugw("active consultation refresh failed", "error", err)
		return
	}

	c.mu.Lock()
	if !c.started || seq <= c.activeApplied {
		c.mu.Unlock()
		return
	}
	c.activeApplied = seq
	c.active = list
	c.mu.Unlock()
	c.notify()
}

// refreshMessages re-fetches the full message thread of the given
// consultation. The response is dropped when it is stale, when the focus
// moved elsewhere in the meantime, or after Stop.
func (c *Controller) refreshMessages(ctx context.Context, consultationID string) {
	seq := atomic.AddUint64(&c.messagesSeq, 1)
	msgs, err := c.api.Messages(ctx, consultationID)
	if err != nil {
		zap.S().Debugw("message refresh failed",
			"consultation", consultationID,
			"error", err,
		)
		return
	}

	c.mu.Lock()
	if !c.started || seq <= c.messagesApplied || c.selected == nil || c.selected.ID != consultationID {
		c.mu.Unlock()
		return
	}
	c.messagesApplied = seq
	c.messages = msgs
	c.reconcileOutboundLocked(msgs)
	c.mu.Unlock()
	c.notify()
}

// ping sends a presence ping; failures only matter for read-status signaling
// and are not surfaced
func (c *Controller) ping(ctx context.Context, consultationID string) {
	if err := c.api.MarkViewing(ctx, consultationID); err != nil {
		zap.S().Debugw("presence ping failed",
			"consultation", consultationID,
			"error", err,
		)
	}
}

// Select focuses a different active consultation and refreshes its thread
// immediately instead of waiting for the next tick
func (c *Controller) Select(ctx context.Context, consultationID string) error {
	c.mu.Lock()
	var target *models.Consultation
	for i := range c.active {
		if c.active[i].ID == consultationID {
			cpy := c.active[i]
			target = &cpy
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return errors.New("consult: consultation is not in the active list")
	}
	c.selected = target
	c.state = StateInSession
	c.messages = nil
	c.outbound = nil
	c.mu.Unlock()
	c.notify()

	c.refreshMessages(ctx, consultationID)
	c.ping(ctx, consultationID)
	return nil
}

// End terminates the focused consultation, clears the selection and message
// list, and schedules a one-shot rating check shortly after so backend state
// can settle. Confirmation is the caller's concern.
func (c *Controller) End(ctx context.Context) error {
	c.mu.Lock()
	if c.selected == nil {
		c.mu.Unlock()
		return errors.New("consult: no consultation selected")
	}
	id := c.selected.ID
	c.mu.Unlock()

	if err := c.api.EndConsultation(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	c.selected = nil
	c.messages = nil
	c.outbound = nil
	c.state = StateIdle
	if c.started {
		if c.ratingTimer != nil {
			c.ratingTimer.Stop()
		}
		c.ratingTimer = time.AfterFunc(c.opts.RatingCheckDelay, func() {
			rctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			c.checkRating(rctx)
		})
	}
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *Controller) notify() {
	if c.opts.OnUpdate != nil {
		c.opts.OnUpdate()
	}
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Doctors returns the doctor directory fetched at mount
func (c *Controller) Doctors() []models.Doctor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Doctor(nil), c.doctors...)
}

// Active returns the last applied active-consultation list
func (c *Controller) Active() []models.Consultation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Consultation(nil), c.active...)
}

// Selected returns the focused consultation, or nil
func (c *Controller) Selected() *models.Consultation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	cpy := *c.selected
	return &cpy
}

// Messages returns the last applied message thread of the focused
// consultation
func (c *Controller) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Message(nil), c.messages...)
}
