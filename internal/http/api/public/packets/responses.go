package packets

import (
	"time"

	"github.com/athar-cms/athar/internal/model"
)

// PublicActivity is the site-facing projection of a visible activity; the
// admin-only flags stay out of it.
type PublicActivity struct {
	ID         int      `json:"id"`
	TitleEn    string   `json:"title_en"`
	TitleAr    string   `json:"title_ar"`
	BodyEn     string   `json:"body_en"`
	BodyAr     string   `json:"body_ar"`
	LocationID *int     `json:"location_id,omitempty"`
	Media      []string `json:"media"`
	StartsAt   string   `json:"starts_at"`
	EndsAt     string   `json:"ends_at"`
}

func NewPublicActivity(a model.Activity) PublicActivity {
	return PublicActivity{
		ID:         a.ID,
		TitleEn:    a.TitleEn,
		TitleAr:    a.TitleAr,
		BodyEn:     a.BodyEn,
		BodyAr:     a.BodyAr,
		LocationID: a.LocationID,
		Media:      a.Media,
		StartsAt:   a.ScheduledStart.Format(time.RFC3339),
		EndsAt:     a.Schedule().End().Format(time.RFC3339),
	}
}

type PublicNews struct {
	ID      int      `json:"id"`
	Kind    string   `json:"kind"`
	TitleEn string   `json:"title_en"`
	TitleAr string   `json:"title_ar"`
	BodyEn  string   `json:"body_en"`
	BodyAr  string   `json:"body_ar"`
	Media   []string `json:"media"`
	Posted  string   `json:"posted_at"`
}

func NewPublicNews(n model.News) PublicNews {
	return PublicNews{
		ID:      n.ID,
		Kind:    n.Kind,
		TitleEn: n.TitleEn,
		TitleAr: n.TitleAr,
		BodyEn:  n.BodyEn,
		BodyAr:  n.BodyAr,
		Media:   n.Media,
		Posted:  n.CreatedAt.Format(time.RFC3339),
	}
}
