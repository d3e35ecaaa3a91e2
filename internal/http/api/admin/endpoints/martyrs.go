package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/admin/packets"
	"github.com/athar-cms/athar/internal/model"
	"github.com/athar-cms/athar/internal/qr"
)

type MartyrController struct {
	store         db.Store
	publicSiteURL string
}

func NewMartyrController(store db.Store, publicSiteURL string) *MartyrController {
	return &MartyrController{store: store, publicSiteURL: publicSiteURL}
}

func MartyrModule(store db.Store, publicSiteURL string) api.Module {
	ctl := NewMartyrController(store, publicSiteURL)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/martyrs", ctl.listMartyrs)
		c.GET("/martyrs/:id", ctl.getMartyr)
		c.POST("/martyrs", ctl.createMartyr)
		c.PATCH("/martyrs/:id", ctl.updateMartyr)
		c.DELETE("/martyrs/:id", ctl.deleteMartyr)

		// printable plaque code
		c.GET("/martyrs/:id/qr", ctl.martyrQR)
	})
}

func (m *MartyrController) listMartyrs(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	name := ctx.Query("name")
	locationParam := ctx.Query("location_id")

	if name == "" && locationParam == "" {
		list, err := m.store.ListMartyrs()
		if err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list martyrs"}
		}
		return list, nil
	}

	var nameFilter *string
	if name != "" {
		nameFilter = &name
	}
	var locationFilter *int
	if locationParam != "" {
		id, err := strconv.Atoi(locationParam)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid location_id"}
		}
		locationFilter = &id
	}

	list, err := m.store.SearchMartyrs(nameFilter, locationFilter)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to search martyrs"}
	}
	return list, nil
}

func (m *MartyrController) getMartyr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	martyr, err := m.store.GetMartyrByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "martyr not found"}
	}
	return martyr, nil
}

func (m *MartyrController) createMartyr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateMartyrRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.LocationID != nil {
		if _, err := m.store.GetLocationByID(*request.LocationID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
		}
	}

	martyr, err := m.store.CreateMartyr(
		request.NameEn, request.NameAr, request.BioEn, request.BioAr,
		request.BirthDate, request.MartyrdomDate,
		request.LocationID, request.Media, request.Slug,
		user.ID,
	)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create martyr"}
	}
	return martyr, nil
}

func (m *MartyrController) updateMartyr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateMartyrRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := m.store.GetMartyrByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "martyr not found"}
	}
	if request.LocationID != nil {
		if _, err := m.store.GetLocationByID(*request.LocationID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
		}
	}

	if err := m.store.UpdateMartyr(
		id,
		request.NameEn, request.NameAr, request.BioEn, request.BioAr,
		request.BirthDate, request.MartyrdomDate,
		request.LocationID, request.Media,
	); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update martyr"}
	}

	updated, err := m.store.GetMartyrByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load updated martyr"}
	}
	return updated, nil
}

func (m *MartyrController) deleteMartyr(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := m.store.GetMartyrByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "martyr not found"}
	}
	if err := m.store.DeleteMartyr(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete martyr"}
	}
	return gin.H{"message": "deleted"}, nil
}

// GET /martyrs/:id/qr?size=512 renders the profile QR as a PNG body rather
// than a JSON envelope.
func (m *MartyrController) martyrQR(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	martyr, err := m.store.GetMartyrByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "martyr not found"}
	}

	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "512"))
	png, err := qr.ProfilePNG(m.publicSiteURL, martyr.Slug, size)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not render QR code"}
	}

	ctx.Data(http.StatusOK, "image/png", png)
	return nil, nil
}
