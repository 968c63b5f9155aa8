package consult

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/client/mocks"
	"github.com/curalink/telehealth-client/clock"
	"github.com/curalink/telehealth-client/models"
)

// quietOptions keeps the recurring poll from firing during a test so only
// explicitly triggered fetches are observed
func quietOptions() Options {
	return Options{
		PollInterval:       time.Hour,
		RatingCheckDelay:   time.Hour,
		SendReconcileDelay: time.Hour,
	}
}

func activeConsultation(id, doctor string) models.Consultation {
	return models.Consultation{
		ID:         id,
		DoctorName: doctor,
		StartedAt:  time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		Status:     models.ConsultationActive,
	}
}

func TestStartSelectsFirstActiveConsultation(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ListDoctors", mock.Anything).Return([]models.Doctor{{ID: "doc-1"}}, nil).Once()
	api.On("PatientDocuments", mock.Anything, mock.Anything).Return(nil, nil).Once()
	api.On("ActiveConsultations", mock.Anything).Return([]models.Consultation{
		activeConsultation("c1", "Dr. Reyes"),
		activeConsultation("c2", "Dr. Okafor"),
	}, nil).Once()
	api.On("Messages", mock.Anything, "c1").Return([]models.Message{
		{ID: "m1", ConsultationID: "c1", Sender: models.SenderDoctor, Content: "Hello"},
	}, nil).Once()
	api.On("MarkViewing", mock.Anything, "c1").Return(nil).Once()
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	assert.Equal(t, StateInSession, ctl.State())
	selected := ctl.Selected()
	assert.NotNil(t, selected)
	assert.Equal(t, "c1", selected.ID)
	assert.Len(t, ctl.Messages(), 1)
	api.AssertNumberOfCalls(t, "Messages", 1)
}

func TestStartWithNoActiveConsultationsGoesIdle(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ListDoctors", mock.Anything).Return(nil, nil).Once()
	api.On("PatientDocuments", mock.Anything, mock.Anything).Return(nil, nil).Once()
	api.On("ActiveConsultations", mock.Anything).Return(nil, nil).Once()
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	assert.Equal(t, StateIdle, ctl.State())
	assert.Nil(t, ctl.Selected())
	api.AssertNotCalled(t, "Messages", mock.Anything, mock.Anything)
}

func TestPollTickFetchesListMessagesAndPingsOnce(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ListDoctors", mock.Anything).Return(nil, nil)
	api.On("PatientDocuments", mock.Anything, mock.Anything).Return(nil, nil)
	api.On("ActiveConsultations", mock.Anything).Return([]models.Consultation{
		activeConsultation("c1", "Dr. Reyes"),
	}, nil)
	api.On("Messages", mock.Anything, "c1").Return(nil, nil)
	api.On("MarkViewing", mock.Anything, "c1").Return(nil)
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	// mount accounted for one of each
	api.AssertNumberOfCalls(t, "ActiveConsultations", 1)
	api.AssertNumberOfCalls(t, "Messages", 1)
	api.AssertNumberOfCalls(t, "MarkViewing", 1)

	ctl.pollOnce()

	api.AssertNumberOfCalls(t, "ActiveConsultations", 2)
	api.AssertNumberOfCalls(t, "Messages", 2)
	api.AssertNumberOfCalls(t, "MarkViewing", 2)
}

func TestPollTickWithoutSelectionOnlyRefreshesActiveList(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ListDoctors", mock.Anything).Return(nil, nil)
	api.On("PatientDocuments", mock.Anything, mock.Anything).Return(nil, nil)
	api.On("ActiveConsultations", mock.Anything).Return(nil, nil)
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	ctl.pollOnce()

	api.AssertNumberOfCalls(t, "ActiveConsultations", 2)
	api.AssertNotCalled(t, "Messages", mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "MarkViewing", mock.Anything, mock.Anything)
}

func TestSelectFetchesImmediately(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ListDoctors", mock.Anything).Return(nil, nil)
	api.On("PatientDocuments", mock.Anything, mock.Anything).Return(nil, nil)
	api.On("ActiveConsultations", mock.Anything).Return([]models.Consultation{
		activeConsultation("c1", "Dr. Reyes"),
		activeConsultation("c2", "Dr. Okafor"),
	}, nil)
	api.On("Messages", mock.Anything, "c1").Return(nil, nil)
	api.On("MarkViewing", mock.Anything, "c1").Return(nil)
	api.On("Messages", mock.Anything, "c2").Return([]models.Message{
		{ID: "m9", ConsultationID: "c2", Sender: models.SenderDoctor, Content: "Hi"},
	}, nil).Once()
	api.On("MarkViewing", mock.Anything, "c2").Return(nil).Once()
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	assert.NoError(t, ctl.Select(context.Background(), "c2"))
	assert.Equal(t, "c2", ctl.Selected().ID)
	assert.Len(t, ctl.Messages(), 1)
	api.AssertNumberOfCalls(t, "Messages", 2)
}

func TestSelectUnknownConsultationFails(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ListDoctors", mock.Anything).Return(nil, nil)
	api.On("PatientDocuments", mock.Anything, mock.Anything).Return(nil, nil)
	api.On("ActiveConsultations", mock.Anything).Return(nil, nil)
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	assert.Error(t, ctl.Select(context.Background(), "ghost"))
}

func TestEndClearsSelectionAndGoesIdle(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ListDoctors", mock.Anything).Return(nil, nil)
	api.On("PatientDocuments", mock.Anything, mock.Anything).Return(nil, nil)
	api.On("ActiveConsultations", mock.Anything).Return([]models.Consultation{
		activeConsultation("c1", "Dr. Reyes"),
	}, nil)
	api.On("Messages", mock.Anything, "c1").Return(nil, nil)
	api.On("MarkViewing", mock.Anything, "c1").Return(nil)
	api.On("EndConsultation", mock.Anything, "c1").Return(nil).Once()
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	assert.NoError(t, ctl.End(context.Background()))
	assert.Equal(t, StateIdle, ctl.State())
	assert.Nil(t, ctl.Selected())
	assert.Empty(t, ctl.Messages())
}

func TestStaleActiveListResponseIsDiscarded(t *testing.T) {
	api := mocks.NewAPI(t)
	api.On("ConsultationHistory", mock.Anything).Return(nil, nil).Maybe()

	ctl := New(api, nil, quietOptions())
	ctl.started = true
	ctl.active = []models.Consultation{activeConsultation("fresh", "Dr. Reyes")}

	// a newer response has already been applied: anything the refresh
	// issues now carries a lower sequence and must be dropped
	atomic.StoreUint64(&ctl.activeSeq, 3)
	ctl.activeApplied = 99

	api.On("ActiveConsultations", mock.Anything).Return([]models.Consultation{
		activeConsultation("stale", "Dr. Okafor"),
	}, nil).Once()
	ctl.refreshActive(context.Background())

	assert.Equal(t, "fresh", ctl.Active()[0].ID)
}

// countingAPI observes poll traffic without the expectation bookkeeping of
// the generated mock, so it can be read safely after teardown
type countingAPI struct {
	client.API
	active   int64
	messages int64
	viewing  int64
}

func (c *countingAPI) ListDoctors(ctx context.Context) ([]models.Doctor, error) { return nil, nil }
func (c *countingAPI) PatientDocuments(ctx context.Context, q models.DocumentQuery) ([]models.Document, error) {
	return nil, nil
}
func (c *countingAPI) ConsultationHistory(ctx context.Context) ([]models.Consultation, error) {
	return nil, nil
}
func (c *countingAPI) ActiveConsultations(ctx context.Context) ([]models.Consultation, error) {
	atomic.AddInt64(&c.active, 1)
	return []models.Consultation{activeConsultation("c1", "Dr. Reyes")}, nil
}
func (c *countingAPI) Messages(ctx context.Context, id string) ([]models.Message, error) {
	atomic.AddInt64(&c.messages, 1)
	return nil, nil
}
func (c *countingAPI) MarkViewing(ctx context.Context, id string) error {
	atomic.AddInt64(&c.viewing, 1)
	return nil
}

func TestStopHaltsPolling(t *testing.T) {
	api := &countingAPI{}
	ctl := New(api, nil, Options{
		PollInterval:       20 * time.Millisecond,
		RatingCheckDelay:   time.Hour,
		SendReconcileDelay: time.Hour,
	})
	assert.NoError(t, ctl.Start(context.Background()))

	// let a few ticks land
	time.Sleep(90 * time.Millisecond)
	ctl.Stop()

	activeAfterStop := atomic.LoadInt64(&api.active)
	messagesAfterStop := atomic.LoadInt64(&api.messages)
	assert.GreaterOrEqual(t, activeAfterStop, int64(2), "expected poll ticks before teardown")

	// several intervals later, not a single further fetch
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, activeAfterStop, atomic.LoadInt64(&api.active))
	assert.Equal(t, messagesAfterStop, atomic.LoadInt64(&api.messages))
}

// gatedAPI stalls the first mount fetch so teardown can win the race
// against a Start still in flight
type gatedAPI struct {
	*countingAPI
	entered chan struct{}
	gate    chan struct{}
	once    sync.Once
}

func (g *gatedAPI) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	g.once.Do(func() { close(g.entered) })
	<-g.gate
	return nil, nil
}

func TestStopDuringMountArmsNoPoller(t *testing.T) {
	api := &countingAPI{}
	gated := &gatedAPI{
		countingAPI: api,
		entered:     make(chan struct{}),
		gate:        make(chan struct{}),
	}
	ctl := New(gated, nil, Options{
		PollInterval:       15 * time.Millisecond,
		RatingCheckDelay:   time.Hour,
		SendReconcileDelay: time.Hour,
	})

	done := make(chan error, 1)
	go func() { done <- ctl.Start(context.Background()) }()

	// the view goes away while the very first fetch is still in flight
	<-gated.entered
	ctl.Stop()
	close(gated.gate)
	assert.NoError(t, <-done)

	base := atomic.LoadInt64(&api.active)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, base, atomic.LoadInt64(&api.active),
		"no poll traffic may start after teardown")
}

func TestStartTwiceFails(t *testing.T) {
	api := &countingAPI{}
	ctl := New(api, clock.New(), quietOptions())
	assert.NoError(t, ctl.Start(context.Background()))
	defer ctl.Stop()

	assert.Error(t, ctl.Start(context.Background()))
}
