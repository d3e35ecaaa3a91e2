// Package reconciler owns the periodic re-evaluation of timed content. It is
// the only writer that flips activation flags on the clock's behalf; every
// decision is delegated to the activation package.
package reconciler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/events"
	"github.com/athar-cms/athar/internal/model"
)

// Store is the slice of the persistence layer the reconciler needs.
// db.Store satisfies it.
type Store interface {
	ListReconcilableActivities() ([]model.Activity, error)
	SetActivitySchedule(id int, s activation.Schedule) error
	ListReconcilableNews() ([]model.News, error)
	SetNewsSchedule(id int, s activation.Schedule) error
	DeleteNews(id int) error
}

const DefaultInterval = time.Minute

type Reconciler struct {
	store     Store
	publisher events.Publisher
	interval  time.Duration

	// now is swapped out in tests.
	now func() time.Time
}

func New(store Store, publisher events.Publisher, interval time.Duration) *Reconciler {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reconciler{
		store:     store,
		publisher: publisher,
		interval:  interval,
		now:       time.Now,
	}
}

// Run re-evaluates all live records once per interval until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.interval).Msg("reconciler started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reconciler stopped")
			return
		case <-ticker.C:
			r.RunOnce(r.now())
		}
	}
}

// RunOnce performs a single reconciliation pass at `now`. Per-record failures
// are logged and skipped so one bad row cannot stall the rest.
func (r *Reconciler) RunOnce(now time.Time) {
	r.reconcileActivities(now)
	r.reconcileNews(now)
}

func (r *Reconciler) reconcileActivities(now time.Time) {
	activities, err := r.store.ListReconcilableActivities()
	if err != nil {
		log.Error().Err(err).Msg("reconciler: could not list activities")
		return
	}

	for _, a := range activities {
		next, action := activation.Reconcile(now, a.Schedule(), activation.KindActivity)
		if action != activation.ActionUpdate {
			continue
		}
		if err := r.store.SetActivitySchedule(a.ID, next); err != nil {
			log.Error().Err(err).Int("activity_id", a.ID).Msg("reconciler: could not persist activity flip")
			continue
		}
		log.Info().Int("activity_id", a.ID).Bool("active", next.Active).Msg("activity visibility flipped")
		r.publisher.PublishVisibility("activities", a.ID, activation.Visible(now, next))
	}
}

func (r *Reconciler) reconcileNews(now time.Time) {
	items, err := r.store.ListReconcilableNews()
	if err != nil {
		log.Error().Err(err).Msg("reconciler: could not list news")
		return
	}

	for _, n := range items {
		next, action := activation.Reconcile(now, n.Schedule(), n.ActivationKind())
		switch action {
		case activation.ActionDelete:
			// regularLive items leave the site entirely once expired.
			if err := r.store.DeleteNews(n.ID); err != nil {
				log.Error().Err(err).Int("news_id", n.ID).Msg("reconciler: could not delete expired news")
				continue
			}
			log.Info().Int("news_id", n.ID).Msg("expired regularLive news deleted")
			r.publisher.PublishVisibility("news", n.ID, false)
		case activation.ActionUpdate:
			if err := r.store.SetNewsSchedule(n.ID, next); err != nil {
				log.Error().Err(err).Int("news_id", n.ID).Msg("reconciler: could not persist news flip")
				continue
			}
			log.Info().Int("news_id", n.ID).Bool("active", next.Active).Msg("news visibility flipped")
			r.publisher.PublishVisibility("news", n.ID, activation.Visible(now, next))
		}
	}
}
