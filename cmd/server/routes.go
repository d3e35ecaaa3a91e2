package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/events"
	"github.com/athar-cms/athar/internal/http/api"
	adminapi "github.com/athar-cms/athar/internal/http/api/admin/endpoints"
	publicapi "github.com/athar-cms/athar/internal/http/api/public/endpoints"
	"github.com/athar-cms/athar/internal/storage"
	"github.com/athar-cms/athar/internal/translate"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	storageSystem storage.Storage,
	publisher events.Publisher,
	translator *translate.Translator,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		// content modules
		adminapi.MartyrModule(store, env.PublicSiteURL),
		adminapi.LocationModule(store),
		adminapi.ActivityModule(store, publisher),
		adminapi.NewsModule(store, publisher),
		adminapi.LegendModule(store),
		// supporting modules
		adminapi.MediaModule(storageSystem),
		adminapi.TranslateModule(translator),
		// session endpoints that require auth
		adminapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/public",
	},
		publicapi.ContentModule(store),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", localUploadDir)
	}
}
