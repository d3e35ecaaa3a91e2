package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/admin/packets"
	"github.com/athar-cms/athar/internal/model"
)

type LegendController struct {
	store db.Store
}

func NewLegendController(store db.Store) *LegendController {
	return &LegendController{store: store}
}

func LegendModule(store db.Store) api.Module {
	ctl := NewLegendController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/legends", ctl.listLegends)
		c.GET("/legends/:id", ctl.getLegend)
		c.POST("/legends", ctl.createLegend)
		c.PATCH("/legends/:id", ctl.updateLegend)
		c.DELETE("/legends/:id", ctl.deleteLegend)
	})
}

func (l *LegendController) listLegends(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var martyrFilter *int
	if p := ctx.Query("martyr_id"); p != "" {
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid martyr_id"}
		}
		martyrFilter = &id
	}

	list, err := l.store.ListLegends(martyrFilter)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list legends"}
	}
	return list, nil
}

func (l *LegendController) getLegend(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	legend, err := l.store.GetLegendByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "legend not found"}
	}
	return legend, nil
}

func (l *LegendController) createLegend(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateLegendRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.MartyrID != nil {
		if _, err := l.store.GetMartyrByID(*request.MartyrID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "martyr not found"}
		}
	}

	legend, err := l.store.CreateLegend(
		request.TitleEn, request.TitleAr, request.StoryEn, request.StoryAr,
		request.MartyrID, request.Media,
		user.ID,
	)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create legend"}
	}
	return legend, nil
}

func (l *LegendController) updateLegend(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateLegendRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := l.store.GetLegendByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "legend not found"}
	}
	if request.MartyrID != nil {
		if _, err := l.store.GetMartyrByID(*request.MartyrID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "martyr not found"}
		}
	}

	if err := l.store.UpdateLegend(
		id,
		request.TitleEn, request.TitleAr, request.StoryEn, request.StoryAr,
		request.MartyrID, request.Media,
	); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update legend"}
	}

	updated, err := l.store.GetLegendByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load updated legend"}
	}
	return updated, nil
}

func (l *LegendController) deleteLegend(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := l.store.GetLegendByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "legend not found"}
	}
	if err := l.store.DeleteLegend(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete legend"}
	}
	return gin.H{"message": "deleted"}, nil
}
