package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/admin/packets"
	"github.com/athar-cms/athar/internal/model"
	"github.com/athar-cms/athar/internal/translate"
)

type TranslateController struct {
	translator *translate.Translator
}

func NewTranslateController(translator *translate.Translator) *TranslateController {
	return &TranslateController{translator: translator}
}

func TranslateModule(translator *translate.Translator) api.Module {
	ctl := NewTranslateController(translator)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/translate", ctl.translateField)
	})
}

// POST /api/admin/translate renders one form field into the other language.
// Only ever called on operator demand, never on save.
func (t *TranslateController) translateField(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.TranslateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if !translate.ValidPair(request.Source, request.Target) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unsupported language pair"}
	}

	translated, err := t.translator.Translate(ctx.Request.Context(), request.Text, request.Source, request.Target)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "translation service unavailable"}
	}

	return packets.TranslateResponse{TranslatedText: translated}, nil
}
