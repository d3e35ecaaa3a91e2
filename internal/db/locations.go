package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/model"
)

const locationColumns = `
	id, name_en, name_ar, description_en, description_ar,
	latitude, longitude, media, created_by, created_at, updated_at`

func CreateLocation(
	nameEn, nameAr, descriptionEn, descriptionAr string,
	latitude, longitude *float64, media []string,
	createdBy int,
) (model.Location, error) {
	var l model.Location
	query := `
	INSERT INTO locations
	(name_en, name_ar, description_en, description_ar,
	 latitude, longitude, media, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	RETURNING` + locationColumns + `;`

	if err := DB.Get(&l, query,
		nameEn, nameAr, descriptionEn, descriptionAr,
		latitude, longitude, pq.Array(media), createdBy,
	); err != nil {
		log.Error().Err(err).Msg("failed to create location")
		return model.Location{}, err
	}
	return l, nil
}

func GetLocationByID(id int) (model.Location, error) {
	var l model.Location
	query := `SELECT` + locationColumns + ` FROM locations WHERE id = $1;`
	err := DB.Get(&l, query, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("location_id", id).Msg("failed to get location by id")
	}
	return l, err
}

func ListLocations() ([]model.Location, error) {
	var all []model.Location
	query := `SELECT` + locationColumns + ` FROM locations ORDER BY id;`
	if err := DB.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("failed to list locations")
		return nil, err
	}
	return all, nil
}

func UpdateLocation(
	id int,
	nameEn, nameAr, descriptionEn, descriptionAr *string,
	latitude, longitude *float64, media []string,
) error {
	var mediaArg interface{}
	if media != nil {
		mediaArg = pq.Array(media)
	}
	_, err := DB.Exec(`
		UPDATE locations
		SET
		name_en        = COALESCE($2, name_en),
		name_ar        = COALESCE($3, name_ar),
		description_en = COALESCE($4, description_en),
		description_ar = COALESCE($5, description_ar),
		latitude       = COALESCE($6, latitude),
		longitude      = COALESCE($7, longitude),
		media          = COALESCE($8, media),
		updated_at     = now()
		WHERE id = $1;`,
		id, nameEn, nameAr, descriptionEn, descriptionAr, latitude, longitude, mediaArg,
	)
	if err != nil {
		log.Error().Err(err).Int("location_id", id).Msg("failed to update location")
	}
	return err
}

func DeleteLocation(id int) error {
	_, err := DB.Exec(`DELETE FROM locations WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("location_id", id).Msg("failed to delete location")
	}
	return err
}
