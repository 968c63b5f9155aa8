package consult

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// everySchedule fires at a fixed delay. The stock "@every" descriptor rounds
// sub-second delays up to a second, which is too coarse for tests.
type everySchedule struct {
	delay time.Duration
}

// Next implements cron.Schedule
func (s everySchedule) Next(t time.Time) time.Time {
	return t.Add(s.delay)
}

// poller wraps a cron scheduler running a single recurring job. Ticks that
// fire while the previous run is still in flight are skipped, so at most one
// poll cycle exists at a time.
type poller struct {
	cron *cron.Cron
}

func newPoller(interval time.Duration, job func()) *poller {
	logger := cron.PrintfLogger(zap.NewStdLog(zap.L()))
	c := cron.New(
		cron.WithChain(cron.SkipIfStillRunning(logger)),
	)
	c.Schedule(everySchedule{delay: interval}, cron.FuncJob(job))
	return &poller{cron: c}
}

func (p *poller) start() {
	p.cron.Start()
}

// stop halts the schedule and waits for a running tick to finish
func (p *poller) stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}
