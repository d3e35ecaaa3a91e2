package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/model"
)

const legendColumns = `
	id, title_en, title_ar, story_en, story_ar, martyr_id, media,
	created_by, created_at, updated_at`

func CreateLegend(
	titleEn, titleAr, storyEn, storyAr string,
	martyrID *int, media []string,
	createdBy int,
) (model.Legend, error) {
	var l model.Legend
	query := `
	INSERT INTO legends
	(title_en, title_ar, story_en, story_ar, martyr_id, media,
	 created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING` + legendColumns + `;`

	if err := DB.Get(&l, query,
		titleEn, titleAr, storyEn, storyAr, martyrID, pq.Array(media), createdBy,
	); err != nil {
		log.Error().Err(err).Msg("failed to create legend")
		return model.Legend{}, err
	}
	return l, nil
}

func GetLegendByID(id int) (model.Legend, error) {
	var l model.Legend
	query := `SELECT` + legendColumns + ` FROM legends WHERE id = $1;`
	err := DB.Get(&l, query, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("legend_id", id).Msg("failed to get legend by id")
	}
	return l, err
}

func ListLegends(martyrID *int) ([]model.Legend, error) {
	var all []model.Legend
	query := `SELECT` + legendColumns + ` FROM legends`
	args := []interface{}{}
	if martyrID != nil {
		query += ` WHERE martyr_id = $1`
		args = append(args, *martyrID)
	}
	query += ` ORDER BY id;`
	if err := DB.Select(&all, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to list legends")
		return nil, err
	}
	return all, nil
}

func UpdateLegend(
	id int,
	titleEn, titleAr, storyEn, storyAr *string,
	martyrID *int, media []string,
) error {
	var mediaArg interface{}
	if media != nil {
		mediaArg = pq.Array(media)
	}
	_, err := DB.Exec(`
		UPDATE legends
		SET
		title_en   = COALESCE($2, title_en),
		title_ar   = COALESCE($3, title_ar),
		story_en   = COALESCE($4, story_en),
		story_ar   = COALESCE($5, story_ar),
		martyr_id  = COALESCE($6, martyr_id),
		media      = COALESCE($7, media),
		updated_at = now()
		WHERE id = $1;`,
		id, titleEn, titleAr, storyEn, storyAr, martyrID, mediaArg,
	)
	if err != nil {
		log.Error().Err(err).Int("legend_id", id).Msg("failed to update legend")
	}
	return err
}

func DeleteLegend(id int) error {
	_, err := DB.Exec(`DELETE FROM legends WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("legend_id", id).Msg("failed to delete legend")
	}
	return err
}
