// Package monitor runs the background health poll against the portfolio
// backend. The latest result feeds the settings page; nothing is retried.
package monitor

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/portfolio-suite/admin-dashboard/internal/portfolio/domain"
	"github.com/portfolio-suite/admin-dashboard/internal/state"
)

// Check is one recorded health probe.
type Check struct {
	At      time.Time
	Healthy bool
	Detail  string
}

// HealthClient is the slice of the backend client the monitor needs.
type HealthClient interface {
	Health(ctx context.Context) (domain.HealthStatus, error)
}

type Scheduler struct {
	client HealthClient
	spec   string
	last   *state.Store[Check]
	cron   *cron.Cron
}

// NewScheduler creates a scheduler for the given cron spec. An empty spec
// disables background polling.
func NewScheduler(client HealthClient, spec string) *Scheduler {
	return &Scheduler{
		client: client,
		spec:   spec,
		last:   state.NewStore(Check{}),
	}
}

// Start initializes the cron task. No-op when disabled.
func (s *Scheduler) Start() {
	if s.spec == "" {
		return
	}

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		s.runCheck()
	})
	if err != nil {
		log.Printf("Failed to create health cron job: %v", err)
		return
	}

	log.Printf("Health monitor started (spec %q)", s.spec)
	c.Start()
	s.cron = c
}

// Stop halts the cron loop, waiting for a running check to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Last returns the most recent check; the zero value means no check has run.
func (s *Scheduler) Last() Check {
	return s.last.Get()
}

func (s *Scheduler) runCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	check := Check{At: time.Now().UTC(), Healthy: true}
	if _, err := s.client.Health(ctx); err != nil {
		check.Healthy = false
		check.Detail = err.Error()
		log.Printf("[warn] operation=health_monitor error=%v", err)
	}
	s.last.Set(check)
}
