package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/athar-cms/athar/internal/activation"
)

// News kinds. Regular items are plain published/unpublished articles; live
// items obey an activation window; regularLive items are deleted outright
// once their window elapses.
const (
	NewsKindRegular     = "regular"
	NewsKindLive        = "live"
	NewsKindRegularLive = "regularLive"
)

// News is an article on the public site. For KindRegular the schedule
// columns are ignored and IsActive is a plain publish flag.
type News struct {
	ID                    int            `db:"id"                      json:"id"`
	Kind                  string         `db:"kind"                    json:"kind"`
	TitleEn               string         `db:"title_en"                json:"title_en"`
	TitleAr               string         `db:"title_ar"                json:"title_ar"`
	BodyEn                string         `db:"body_en"                 json:"body_en"`
	BodyAr                string         `db:"body_ar"                 json:"body_ar"`
	Media                 pq.StringArray `db:"media"                   json:"media"`
	ScheduledStart        time.Time      `db:"scheduled_start"         json:"scheduled_start"`
	DurationHours         int            `db:"duration_hours"          json:"duration_hours"`
	IsActive              bool           `db:"is_active"               json:"is_active"`
	IsManuallyReactivated bool           `db:"is_manually_reactivated" json:"is_manually_reactivated"`
	CreatedBy             int            `db:"created_by"              json:"created_by"`
	CreatedAt             time.Time      `db:"created_at"              json:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"              json:"updated_at"`
}

// Timed reports whether the item participates in window evaluation.
func (n News) Timed() bool {
	return n.Kind == NewsKindLive || n.Kind == NewsKindRegularLive
}

// ActivationKind maps the persisted kind onto the evaluator's.
func (n News) ActivationKind() activation.Kind {
	if n.Kind == NewsKindRegularLive {
		return activation.KindRegularLive
	}
	return activation.KindLiveNews
}

func (n News) Schedule() activation.Schedule {
	return activation.Schedule{
		Start:               n.ScheduledStart,
		DurationHours:       n.DurationHours,
		Active:              n.IsActive,
		ManuallyReactivated: n.IsManuallyReactivated,
	}
}

func (n *News) ApplySchedule(s activation.Schedule) {
	n.ScheduledStart = s.Start
	n.DurationHours = s.DurationHours
	n.IsActive = s.Active
	n.IsManuallyReactivated = s.ManuallyReactivated
}
