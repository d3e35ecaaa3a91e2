package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/model"
)

const activityColumns = `
	id, title_en, title_ar, body_en, body_ar, location_id, media,
	scheduled_start, duration_hours, is_active, is_manually_reactivated,
	created_by, created_at, updated_at`

func CreateActivity(
	titleEn, titleAr, bodyEn, bodyAr string,
	locationID *int, media []string,
	schedule activation.Schedule,
	createdBy int,
) (model.Activity, error) {
	var a model.Activity
	query := `
	INSERT INTO activities
	(title_en, title_ar, body_en, body_ar, location_id, media,
	 scheduled_start, duration_hours, is_active, is_manually_reactivated,
	 created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	RETURNING` + activityColumns + `;`

	if err := DB.Get(&a, query,
		titleEn, titleAr, bodyEn, bodyAr, locationID, pq.Array(media),
		schedule.Start, schedule.DurationHours, schedule.Active, schedule.ManuallyReactivated,
		createdBy,
	); err != nil {
		log.Error().Err(err).Msg("failed to create activity")
		return model.Activity{}, err
	}
	return a, nil
}

func GetActivityByID(id int) (model.Activity, error) {
	var a model.Activity
	query := `SELECT` + activityColumns + ` FROM activities WHERE id = $1;`
	err := DB.Get(&a, query, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("activity_id", id).Msg("failed to get activity by id")
	}
	return a, err
}

func ListActivities() ([]model.Activity, error) {
	var all []model.Activity
	query := `SELECT` + activityColumns + ` FROM activities ORDER BY scheduled_start DESC, id;`
	if err := DB.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list activities")
		return nil, err
	}
	return all, nil
}

// ListReconcilableActivities returns the reconciler's work list: every
// activity whose Active flag is still driven by the clock.
func ListReconcilableActivities() ([]model.Activity, error) {
	var all []model.Activity
	query := `SELECT` + activityColumns + `
	FROM activities
	WHERE is_manually_reactivated = false
	ORDER BY id;`
	if err := DB.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list reconcilable activities")
		return nil, err
	}
	return all, nil
}

func UpdateActivity(
	id int,
	titleEn, titleAr, bodyEn, bodyAr *string,
	locationID *int, media []string,
) error {
	var mediaArg interface{}
	if media != nil {
		mediaArg = pq.Array(media)
	}
	_, err := DB.Exec(`
		UPDATE activities
		SET
		title_en    = COALESCE($2, title_en),
		title_ar    = COALESCE($3, title_ar),
		body_en     = COALESCE($4, body_en),
		body_ar     = COALESCE($5, body_ar),
		location_id = COALESCE($6, location_id),
		media       = COALESCE($7, media),
		updated_at  = now()
		WHERE id = $1;`,
		id, titleEn, titleAr, bodyEn, bodyAr, locationID, mediaArg,
	)
	if err != nil {
		log.Error().Err(err).Int("activity_id", id).Msg("failed to update activity")
	}
	return err
}

// SetActivitySchedule persists the activation fields as one unit. Used by
// form submission and by the reconciler; both go through the evaluator first.
func SetActivitySchedule(id int, s activation.Schedule) error {
	_, err := DB.Exec(`
		UPDATE activities
		SET
		scheduled_start         = $2,
		duration_hours          = $3,
		is_active               = $4,
		is_manually_reactivated = $5,
		updated_at              = now()
		WHERE id = $1;`,
		id, s.Start, s.DurationHours, s.Active, s.ManuallyReactivated,
	)
	if err != nil {
		log.Error().Err(err).Int("activity_id", id).Msg("failed to set activity schedule")
	}
	return err
}

func DeleteActivity(id int) error {
	_, err := DB.Exec(`DELETE FROM activities WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("activity_id", id).Msg("failed to delete activity")
	}
	return err
}
