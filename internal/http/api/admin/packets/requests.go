package packets

import "time"

// auth

type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// martyrs

type CreateMartyrRequest struct {
	NameEn        string     `json:"name_en" binding:"required"`
	NameAr        string     `json:"name_ar"`
	BioEn         string     `json:"bio_en"`
	BioAr         string     `json:"bio_ar"`
	BirthDate     *time.Time `json:"birth_date"`
	MartyrdomDate time.Time  `json:"martyrdom_date" binding:"required"`
	LocationID    *int       `json:"location_id"`
	Media         []string   `json:"media"`
	Slug          string     `json:"slug" binding:"required"`
}

type UpdateMartyrRequest struct {
	NameEn        *string    `json:"name_en"`
	NameAr        *string    `json:"name_ar"`
	BioEn         *string    `json:"bio_en"`
	BioAr         *string    `json:"bio_ar"`
	BirthDate     *time.Time `json:"birth_date"`
	MartyrdomDate *time.Time `json:"martyrdom_date"`
	LocationID    *int       `json:"location_id"`
	Media         []string   `json:"media"`
}

// locations

type CreateLocationRequest struct {
	NameEn        string   `json:"name_en" binding:"required"`
	NameAr        string   `json:"name_ar"`
	DescriptionEn string   `json:"description_en"`
	DescriptionAr string   `json:"description_ar"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Media         []string `json:"media"`
}

type UpdateLocationRequest struct {
	NameEn        *string  `json:"name_en"`
	NameAr        *string  `json:"name_ar"`
	DescriptionEn *string  `json:"description_en"`
	DescriptionAr *string  `json:"description_ar"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Media         []string `json:"media"`
}

// activities

type CreateActivityRequest struct {
	TitleEn        string    `json:"title_en" binding:"required"`
	TitleAr        string    `json:"title_ar"`
	BodyEn         string    `json:"body_en"`
	BodyAr         string    `json:"body_ar"`
	LocationID     *int      `json:"location_id"`
	Media          []string  `json:"media"`
	ScheduledStart time.Time `json:"scheduled_start" binding:"required"`
	DurationHours  int       `json:"duration_hours" binding:"required,min=1,max=168"`
	ForceActiveNow bool      `json:"force_active_now"`
}

// UpdateActivityRequest leaves any omitted field untouched. Sending any of
// the schedule fields re-resolves activation from scratch, exactly as a
// fresh submission would.
type UpdateActivityRequest struct {
	TitleEn        *string    `json:"title_en"`
	TitleAr        *string    `json:"title_ar"`
	BodyEn         *string    `json:"body_en"`
	BodyAr         *string    `json:"body_ar"`
	LocationID     *int       `json:"location_id"`
	Media          []string   `json:"media"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	DurationHours  *int       `json:"duration_hours" binding:"omitempty,min=1,max=168"`
	ForceActiveNow *bool      `json:"force_active_now"`
}

// SetActivationRequest drives the dedicated on/off toggle.
type SetActivationRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// news

type CreateNewsRequest struct {
	Kind           string    `json:"kind" binding:"required,oneof=regular live regularLive"`
	TitleEn        string    `json:"title_en" binding:"required"`
	TitleAr        string    `json:"title_ar"`
	BodyEn         string    `json:"body_en"`
	BodyAr         string    `json:"body_ar"`
	Media          []string  `json:"media"`
	ScheduledStart time.Time `json:"scheduled_start"`
	DurationHours  int       `json:"duration_hours" binding:"omitempty,min=1,max=168"`
	ForceActiveNow bool      `json:"force_active_now"`
}

type UpdateNewsRequest struct {
	TitleEn        *string    `json:"title_en"`
	TitleAr        *string    `json:"title_ar"`
	BodyEn         *string    `json:"body_en"`
	BodyAr         *string    `json:"body_ar"`
	Media          []string   `json:"media"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	DurationHours  *int       `json:"duration_hours" binding:"omitempty,min=1,max=168"`
	ForceActiveNow *bool      `json:"force_active_now"`
}

// legends

type CreateLegendRequest struct {
	TitleEn  string   `json:"title_en" binding:"required"`
	TitleAr  string   `json:"title_ar"`
	StoryEn  string   `json:"story_en"`
	StoryAr  string   `json:"story_ar"`
	MartyrID *int     `json:"martyr_id"`
	Media    []string `json:"media"`
}

type UpdateLegendRequest struct {
	TitleEn  *string  `json:"title_en"`
	TitleAr  *string  `json:"title_ar"`
	StoryEn  *string  `json:"story_en"`
	StoryAr  *string  `json:"story_ar"`
	MartyrID *int     `json:"martyr_id"`
	Media    []string `json:"media"`
}

// translation

type TranslateRequest struct {
	Text   string `json:"text" binding:"required"`
	Source string `json:"source" binding:"required,oneof=en ar"`
	Target string `json:"target" binding:"required,oneof=en ar"`
}
