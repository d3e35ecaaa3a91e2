// Package endpoints serves the unauthenticated read side consumed by the
// public site. Visibility decisions go through the same activation evaluator
// the admin API and the reconciler use, so a record can never look live in
// one place and expired in another.
package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/public/packets"
)

type ContentController struct {
	store db.Store
	now   func() time.Time
}

func NewContentController(store db.Store) *ContentController {
	return &ContentController{store: store, now: time.Now}
}

func ContentModule(store db.Store) api.Module {
	ctl := NewContentController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/activities", ctl.visibleActivities)
		c.PUBLIC_GET("/news", ctl.visibleNews)
		c.PUBLIC_GET("/martyrs", ctl.listMartyrs)
		c.PUBLIC_GET("/martyrs/:slug", ctl.getMartyr)
		c.PUBLIC_GET("/locations", ctl.listLocations)
		c.PUBLIC_GET("/locations/:id", ctl.getLocation)
		c.PUBLIC_GET("/legends", ctl.listLegends)
		c.PUBLIC_GET("/legends/:id", ctl.getLegend)
	})
}

func (p *ContentController) visibleActivities(ctx *gin.Context) (any, *api.APIError) {
	list, err := p.store.ListActivities()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list activities"}
	}

	now := p.now()
	response := make([]packets.PublicActivity, 0, len(list))
	for _, it := range list {
		// re-evaluate on read so a record the reconciler has not reached
		// yet still renders correctly
		s, action := activation.Reconcile(now, it.Schedule(), activation.KindActivity)
		if action != activation.ActionDelete && activation.Visible(now, s) {
			response = append(response, packets.NewPublicActivity(it))
		}
	}
	return response, nil
}

func (p *ContentController) visibleNews(ctx *gin.Context) (any, *api.APIError) {
	list, err := p.store.ListNews(nil)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list news"}
	}

	now := p.now()
	response := make([]packets.PublicNews, 0, len(list))
	for _, it := range list {
		visible := it.IsActive
		if it.Timed() {
			s, action := activation.Reconcile(now, it.Schedule(), it.ActivationKind())
			visible = action != activation.ActionDelete && activation.Visible(now, s)
		}
		if visible {
			response = append(response, packets.NewPublicNews(it))
		}
	}
	return response, nil
}

func (p *ContentController) listMartyrs(ctx *gin.Context) (any, *api.APIError) {
	list, err := p.store.ListMartyrs()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list martyrs"}
	}
	return list, nil
}

func (p *ContentController) getMartyr(ctx *gin.Context) (any, *api.APIError) {
	martyr, err := p.store.GetMartyrBySlug(ctx.Param("slug"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "martyr not found"}
	}
	return martyr, nil
}

func (p *ContentController) listLocations(ctx *gin.Context) (any, *api.APIError) {
	list, err := p.store.ListLocations()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list locations"}
	}
	return list, nil
}

func (p *ContentController) getLocation(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	location, err := p.store.GetLocationByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
	}
	return location, nil
}

func (p *ContentController) getLegend(ctx *gin.Context) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	legend, err := p.store.GetLegendByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "legend not found"}
	}
	return legend, nil
}

func (p *ContentController) listLegends(ctx *gin.Context) (any, *api.APIError) {
	list, err := p.store.ListLegends(nil)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list legends"}
	}
	return list, nil
}
