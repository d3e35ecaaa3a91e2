package packets

import (
	"time"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/model"
)

// ActivityResponse mirrors model.Activity, flattens times to RFC3339 and
// carries the derived phase so the console never re-implements the window
// test.
type ActivityResponse struct {
	ID                    int      `json:"id"`
	TitleEn               string   `json:"title_en"`
	TitleAr               string   `json:"title_ar"`
	BodyEn                string   `json:"body_en"`
	BodyAr                string   `json:"body_ar"`
	LocationID            *int     `json:"location_id,omitempty"`
	Media                 []string `json:"media"`
	ScheduledStart        string   `json:"scheduled_start"`
	ScheduledEnd          string   `json:"scheduled_end"`
	DurationHours         int      `json:"duration_hours"`
	IsActive              bool     `json:"is_active"`
	IsManuallyReactivated bool     `json:"is_manually_reactivated"`
	Phase                 string   `json:"phase"`
	Visible               bool     `json:"visible"`
	CreatedAt             string   `json:"created_at"`
	UpdatedAt             string   `json:"updated_at"`
}

func NewActivityResponse(now time.Time, a model.Activity) ActivityResponse {
	s := a.Schedule()
	return ActivityResponse{
		ID:                    a.ID,
		TitleEn:               a.TitleEn,
		TitleAr:               a.TitleAr,
		BodyEn:                a.BodyEn,
		BodyAr:                a.BodyAr,
		LocationID:            a.LocationID,
		Media:                 a.Media,
		ScheduledStart:        a.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:          s.End().Format(time.RFC3339),
		DurationHours:         a.DurationHours,
		IsActive:              a.IsActive,
		IsManuallyReactivated: a.IsManuallyReactivated,
		Phase:                 string(activation.DerivePhase(now, s)),
		Visible:               activation.Visible(now, s),
		CreatedAt:             a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             a.UpdatedAt.Format(time.RFC3339),
	}
}

type NewsResponse struct {
	ID                    int      `json:"id"`
	Kind                  string   `json:"kind"`
	TitleEn               string   `json:"title_en"`
	TitleAr               string   `json:"title_ar"`
	BodyEn                string   `json:"body_en"`
	BodyAr                string   `json:"body_ar"`
	Media                 []string `json:"media"`
	ScheduledStart        string   `json:"scheduled_start"`
	ScheduledEnd          string   `json:"scheduled_end"`
	DurationHours         int      `json:"duration_hours"`
	IsActive              bool     `json:"is_active"`
	IsManuallyReactivated bool     `json:"is_manually_reactivated"`
	Phase                 string   `json:"phase,omitempty"`
	Visible               bool     `json:"visible"`
	CreatedAt             string   `json:"created_at"`
	UpdatedAt             string   `json:"updated_at"`
}

func NewNewsResponse(now time.Time, n model.News) NewsResponse {
	s := n.Schedule()
	out := NewsResponse{
		ID:                    n.ID,
		Kind:                  n.Kind,
		TitleEn:               n.TitleEn,
		TitleAr:               n.TitleAr,
		BodyEn:                n.BodyEn,
		BodyAr:                n.BodyAr,
		Media:                 n.Media,
		ScheduledStart:        n.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:          s.End().Format(time.RFC3339),
		DurationHours:         n.DurationHours,
		IsActive:              n.IsActive,
		IsManuallyReactivated: n.IsManuallyReactivated,
		CreatedAt:             n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             n.UpdatedAt.Format(time.RFC3339),
	}
	if n.Timed() {
		out.Phase = string(activation.DerivePhase(now, s))
		out.Visible = activation.Visible(now, s)
	} else {
		// regular news: plain publish flag, no window.
		out.Visible = n.IsActive
	}
	return out
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
