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

type LocationController struct {
	store db.Store
}

func NewLocationController(store db.Store) *LocationController {
	return &LocationController{store: store}
}

func LocationModule(store db.Store) api.Module {
	ctl := NewLocationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/locations", ctl.listLocations)
		c.GET("/locations/:id", ctl.getLocation)
		c.POST("/locations", ctl.createLocation)
		c.PATCH("/locations/:id", ctl.updateLocation)
		c.DELETE("/locations/:id", ctl.deleteLocation)
	})
}

func (l *LocationController) listLocations(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := l.store.ListLocations()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list locations"}
	}
	return list, nil
}

func (l *LocationController) getLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	location, err := l.store.GetLocationByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
	}
	return location, nil
}

func (l *LocationController) createLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	location, err := l.store.CreateLocation(
		request.NameEn, request.NameAr, request.DescriptionEn, request.DescriptionAr,
		request.Latitude, request.Longitude, request.Media,
		user.ID,
	)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create location"}
	}
	return location, nil
}

func (l *LocationController) updateLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := l.store.GetLocationByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
	}

	if err := l.store.UpdateLocation(
		id,
		request.NameEn, request.NameAr, request.DescriptionEn, request.DescriptionAr,
		request.Latitude, request.Longitude, request.Media,
	); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update location"}
	}

	updated, err := l.store.GetLocationByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load updated location"}
	}
	return updated, nil
}

func (l *LocationController) deleteLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := l.store.GetLocationByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
	}
	if err := l.store.DeleteLocation(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete location"}
	}
	return gin.H{"message": "deleted"}, nil
}
