package model

import (
	"time"

	"github.com/lib/pq"
)

// Martyr is a memorial profile. All free-text fields are bilingual; the _en
// and _ar columns are edited independently through the translation workflow.
type Martyr struct {
	ID            int            `db:"id"             json:"id"`
	NameEn        string         `db:"name_en"        json:"name_en"`
	NameAr        string         `db:"name_ar"        json:"name_ar"`
	BioEn         string         `db:"bio_en"         json:"bio_en"`
	BioAr         string         `db:"bio_ar"         json:"bio_ar"`
	BirthDate     *time.Time     `db:"birth_date"     json:"birth_date,omitempty"`
	MartyrdomDate time.Time      `db:"martyrdom_date" json:"martyrdom_date"`
	LocationID    *int           `db:"location_id"    json:"location_id,omitempty"`
	Media         pq.StringArray `db:"media"          json:"media"`
	Slug          string         `db:"slug"           json:"slug"`
	CreatedBy     int            `db:"created_by"     json:"created_by"`
	CreatedAt     time.Time      `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"     json:"updated_at"`
}
