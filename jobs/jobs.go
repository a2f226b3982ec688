package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"LifeCarePortal/config"
	"LifeCarePortal/session"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

/*
* Register the session sweep and the backend health probe
* Start the scheduler and hand it back so the caller can stop it
 */
func StartScheduler(cfg *config.Config, store session.Store, backend Pinger) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(cfg.SweepSchedule, func() {
		SweepSessions(context.Background(), store)
	}); err != nil {
		log.Println("Error from scheduling session sweep:", err)
		return nil, err
	}

	if _, err := c.AddFunc(cfg.HealthSchedule, func() {
		ProbeBackend(context.Background(), backend)
	}); err != nil {
		log.Println("Error from scheduling backend probe:", err)
		return nil, err
	}

	c.Start()
	return c, nil
}

func SweepSessions(ctx context.Context, store session.Store) int {
	removed, err := store.Sweep(ctx, time.Now())
	if err != nil {
		log.Println("Error from sweeping sessions:", err)
		return 0
	}
	if removed > 0 {
		log.Println("Expired sessions removed:", removed)
	}
	return removed
}

// ProbeBackend reports whether the backend answered within ten seconds.
func ProbeBackend(ctx context.Context, backend Pinger) bool {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := backend.Ping(ctx); err != nil {
		log.Println("Error from backend health probe:", err)
		return false
	}
	return true
}
