package db

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/model"
)

const martyrColumns = `
	id, name_en, name_ar, bio_en, bio_ar, birth_date, martyrdom_date,
	location_id, media, slug, created_by, created_at, updated_at`

func CreateMartyr(
	nameEn, nameAr, bioEn, bioAr string,
	birthDate *time.Time, martyrdomDate time.Time,
	locationID *int, media []string, slug string,
	createdBy int,
) (model.Martyr, error) {
	var m model.Martyr
	query := `
	INSERT INTO martyrs
	(name_en, name_ar, bio_en, bio_ar, birth_date, martyrdom_date,
	 location_id, media, slug, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
	RETURNING` + martyrColumns + `;`

	if err := DB.Get(&m, query,
		nameEn, nameAr, bioEn, bioAr, birthDate, martyrdomDate,
		locationID, pq.Array(media), slug, createdBy,
	); err != nil {
		log.Error().Err(err).Msg("failed to create martyr")
		return model.Martyr{}, err
	}
	return m, nil
}

func GetMartyrByID(id int) (model.Martyr, error) {
	var m model.Martyr
	query := `SELECT` + martyrColumns + ` FROM martyrs WHERE id = $1;`
	err := DB.Get(&m, query, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("martyr_id", id).Msg("failed to get martyr by id")
	}
	return m, err
}

func GetMartyrBySlug(slug string) (model.Martyr, error) {
	var m model.Martyr
	query := `SELECT` + martyrColumns + ` FROM martyrs WHERE slug = $1;`
	err := DB.Get(&m, query, slug)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Str("slug", slug).Msg("failed to get martyr by slug")
	}
	return m, err
}

func ListMartyrs() ([]model.Martyr, error) {
	var all []model.Martyr
	query := `SELECT` + martyrColumns + ` FROM martyrs ORDER BY id;`
	if err := DB.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list martyrs")
		return nil, err
	}
	return all, nil
}

// SearchMartyrs matches name against either language column; both filters
// are optional.
func SearchMartyrs(name *string, locationID *int) ([]model.Martyr, error) {
	var all []model.Martyr
	query := `SELECT` + martyrColumns + ` FROM martyrs WHERE 1=1`

	args := []interface{}{}
	argCount := 0

	if name != nil && *name != "" {
		argCount++
		n := strconv.Itoa(argCount)
		query += ` AND (name_en ILIKE $` + n + ` OR name_ar ILIKE $` + n + `)`
		args = append(args, "%"+*name+"%")
	}
	if locationID != nil {
		argCount++
		query += ` AND location_id = $` + strconv.Itoa(argCount)
		args = append(args, *locationID)
	}

	query += ` ORDER BY id;`

	if err := DB.Select(&all, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to search martyrs")
		return nil, err
	}
	return all, nil
}

func UpdateMartyr(
	id int,
	nameEn, nameAr, bioEn, bioAr *string,
	birthDate, martyrdomDate *time.Time,
	locationID *int, media []string,
) error {
	var mediaArg interface{}
	if media != nil {
		mediaArg = pq.Array(media)
	}
	_, err := DB.Exec(`
		UPDATE martyrs
		SET
		name_en        = COALESCE($2, name_en),
		name_ar        = COALESCE($3, name_ar),
		bio_en         = COALESCE($4, bio_en),
		bio_ar         = COALESCE($5, bio_ar),
		birth_date     = COALESCE($6, birth_date),
		martyrdom_date = COALESCE($7, martyrdom_date),
		location_id    = COALESCE($8, location_id),
		media          = COALESCE($9, media),
		updated_at     = now()
		WHERE id = $1;`,
		id, nameEn, nameAr, bioEn, bioAr, birthDate, martyrdomDate, locationID, mediaArg,
	)
	if err != nil {
		log.Error().Err(err).Int("martyr_id", id).Msg("failed to update martyr")
	}
	return err
}

func DeleteMartyr(id int) error {
	_, err := DB.Exec(`DELETE FROM martyrs WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("martyr_id", id).Msg("failed to delete martyr")
	}
	return err
}
