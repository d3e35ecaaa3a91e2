package model

import (
	"time"

	"github.com/lib/pq"
)

// Legend is an oral-history story, optionally tied to a martyr profile.
type Legend struct {
	ID        int            `db:"id"         json:"id"`
	TitleEn   string         `db:"title_en"   json:"title_en"`
	TitleAr   string         `db:"title_ar"   json:"title_ar"`
	StoryEn   string         `db:"story_en"   json:"story_en"`
	StoryAr   string         `db:"story_ar"   json:"story_ar"`
	MartyrID  *int           `db:"martyr_id"  json:"martyr_id,omitempty"`
	Media     pq.StringArray `db:"media"      json:"media"`
	CreatedBy int            `db:"created_by" json:"created_by"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}
