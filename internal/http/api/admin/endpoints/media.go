package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/admin/packets"
	"github.com/athar-cms/athar/internal/model"
	"github.com/athar-cms/athar/internal/storage"
)

type MediaController struct {
	storage storage.Storage
}

func NewMediaController(storageSystem storage.Storage) *MediaController {
	return &MediaController{storage: storageSystem}
}

func MediaModule(storageSystem storage.Storage) api.Module {
	ctl := NewMediaController(storageSystem)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/media", ctl.uploadMedia)
	})
}

// POST /api/admin/media accepts one multipart file under "file" and returns
// the stable URL records keep in their media lists.
func (m *MediaController) uploadMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	url, err := m.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("media upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	return packets.UploadResponse{URL: url}, nil
}
