package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/athar-cms/athar/internal/activation"
)

// Activity is a scheduled event (commemoration, exhibition, march) that is
// publicly visible only inside its activation window.
type Activity struct {
	ID                    int            `db:"id"                      json:"id"`
	TitleEn               string         `db:"title_en"                json:"title_en"`
	TitleAr               string         `db:"title_ar"                json:"title_ar"`
	BodyEn                string         `db:"body_en"                 json:"body_en"`
	BodyAr                string         `db:"body_ar"                 json:"body_ar"`
	LocationID            *int           `db:"location_id"             json:"location_id,omitempty"`
	Media                 pq.StringArray `db:"media"                   json:"media"`
	ScheduledStart        time.Time      `db:"scheduled_start"         json:"scheduled_start"`
	DurationHours         int            `db:"duration_hours"          json:"duration_hours"`
	IsActive              bool           `db:"is_active"               json:"is_active"`
	IsManuallyReactivated bool           `db:"is_manually_reactivated" json:"is_manually_reactivated"`
	CreatedBy             int            `db:"created_by"              json:"created_by"`
	CreatedAt             time.Time      `db:"created_at"              json:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"              json:"updated_at"`
}

// Schedule extracts the activation fields for the evaluator.
func (a Activity) Schedule() activation.Schedule {
	return activation.Schedule{
		Start:               a.ScheduledStart,
		DurationHours:       a.DurationHours,
		Active:              a.IsActive,
		ManuallyReactivated: a.IsManuallyReactivated,
	}
}

// ApplySchedule copies evaluator output back onto the record.
func (a *Activity) ApplySchedule(s activation.Schedule) {
	a.ScheduledStart = s.Start
	a.DurationHours = s.DurationHours
	a.IsActive = s.Active
	a.IsManuallyReactivated = s.ManuallyReactivated
}
