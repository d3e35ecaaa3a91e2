package main

import (
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/storage"
)

const localUploadDir = "./uploads"

func InitStorage(env Environment) storage.Storage {
	if !env.UseSpaces {
		log.Info().Str("dir", localUploadDir).Msg("using local file storage")
		return storage.NewLocalStorage(localUploadDir)
	}

	spaces, err := storage.NewSpacesStorage(
		env.SpacesEndpoint,
		env.SpacesRegion,
		env.SpacesBucket,
		env.SpacesCDNURL,
		env.SpacesAccessKey,
		env.SpacesSecretKey,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize spaces storage")
	}
	log.Info().Str("bucket", env.SpacesBucket).Msg("using spaces storage")
	return spaces
}
