package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/model"
)

const newsColumns = `
	id, kind, title_en, title_ar, body_en, body_ar, media,
	scheduled_start, duration_hours, is_active, is_manually_reactivated,
	created_by, created_at, updated_at`

func CreateNews(
	kind, titleEn, titleAr, bodyEn, bodyAr string,
	media []string,
	schedule activation.Schedule,
	createdBy int,
) (model.News, error) {
	var n model.News
	query := `
	INSERT INTO news
	(kind, title_en, title_ar, body_en, body_ar, media,
	 scheduled_start, duration_hours, is_active, is_manually_reactivated,
	 created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	RETURNING` + newsColumns + `;`

	if err := DB.Get(&n, query,
		kind, titleEn, titleAr, bodyEn, bodyAr, pq.Array(media),
		schedule.Start, schedule.DurationHours, schedule.Active, schedule.ManuallyReactivated,
		createdBy,
	); err != nil {
		log.Error().Err(err).Msg("failed to create news item")
		return model.News{}, err
	}
	return n, nil
}

func GetNewsByID(id int) (model.News, error) {
	var n model.News
	query := `SELECT` + newsColumns + ` FROM news WHERE id = $1;`
	err := DB.Get(&n, query, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("news_id", id).Msg("failed to get news by id")
	}
	return n, err
}

// ListNews returns all items, optionally narrowed to one kind.
func ListNews(kind *string) ([]model.News, error) {
	var all []model.News
	query := `SELECT` + newsColumns + ` FROM news`
	args := []interface{}{}
	if kind != nil && *kind != "" {
		query += ` WHERE kind = $1`
		args = append(args, *kind)
	}
	query += ` ORDER BY created_at DESC, id;`
	if err := DB.Select(&all, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to list news")
		return nil, err
	}
	return all, nil
}

// ListReconcilableNews returns live-kind items still driven by the clock.
func ListReconcilableNews() ([]model.News, error) {
	var all []model.News
	query := `SELECT` + newsColumns + `
	FROM news
	WHERE kind IN ($1, $2) AND is_manually_reactivated = false
	ORDER BY id;`
	if err := DB.Select(&all, query, model.NewsKindLive, model.NewsKindRegularLive); err != nil {
		log.Error().Err(err).Msg("failed to list reconcilable news")
		return nil, err
	}
	return all, nil
}

func UpdateNews(
	id int,
	titleEn, titleAr, bodyEn, bodyAr *string,
	media []string,
) error {
	var mediaArg interface{}
	if media != nil {
		mediaArg = pq.Array(media)
	}
	_, err := DB.Exec(`
		UPDATE news
		SET
		title_en   = COALESCE($2, title_en),
		title_ar   = COALESCE($3, title_ar),
		body_en    = COALESCE($4, body_en),
		body_ar    = COALESCE($5, body_ar),
		media      = COALESCE($6, media),
		updated_at = now()
		WHERE id = $1;`,
		id, titleEn, titleAr, bodyEn, bodyAr, mediaArg,
	)
	if err != nil {
		log.Error().Err(err).Int("news_id", id).Msg("failed to update news")
	}
	return err
}

// SetNewsSchedule persists the activation fields as one unit.
func SetNewsSchedule(id int, s activation.Schedule) error {
	_, err := DB.Exec(`
		UPDATE news
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
		log.Error().Err(err).Int("news_id", id).Msg("failed to set news schedule")
	}
	return err
}

func DeleteNews(id int) error {
	_, err := DB.Exec(`DELETE FROM news WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("news_id", id).Msg("failed to delete news")
	}
	return err
}
