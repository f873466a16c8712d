// Package scheduler runs the periodic purge of cached recommendation
// payloads. Cached scores embed a recency contribution computed against the
// wall clock, so they drift as postings age; the purge bounds that drift.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"smartapplyhub/internal/infrastructure/cache"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron  *cron.Cron
	cache *cache.Redis
	spec  string
}

func New(rc *cache.Redis, every time.Duration) *Scheduler {
	if every <= 0 {
		every = time.Hour
	}
	return &Scheduler{
		cron:  cron.New(),
		cache: rc,
		spec:  fmt.Sprintf("@every %s", every),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.purge(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) purge(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "recommendations:*"); err != nil {
		log.Printf("[scheduler] Recommendation cache purge error: %v", err)
		return
	}
	log.Println("[scheduler] Recommendation cache purged")
}
