package model

import (
	"time"

	"github.com/lib/pq"
)

// Location is a memorial site or place of significance.
type Location struct {
	ID            int            `db:"id"             json:"id"`
	NameEn        string         `db:"name_en"        json:"name_en"`
	NameAr        string         `db:"name_ar"        json:"name_ar"`
	DescriptionEn string         `db:"description_en" json:"description_en"`
	DescriptionAr string         `db:"description_ar" json:"description_ar"`
	Latitude      *float64       `db:"latitude"       json:"latitude,omitempty"`
	Longitude     *float64       `db:"longitude"      json:"longitude,omitempty"`
	Media         pq.StringArray `db:"media"          json:"media"`
	CreatedBy     int            `db:"created_by"     json:"created_by"`
	CreatedAt     time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"     json:"updated_at"`
}
