package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/events"
	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/admin/packets"
	"github.com/athar-cms/athar/internal/model"
)

type NewsController struct {
	store     db.Store
	publisher events.Publisher
	now       func() time.Time
}

func NewNewsController(store db.Store, publisher events.Publisher) *NewsController {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &NewsController{store: store, publisher: publisher, now: time.Now}
}

func NewsModule(store db.Store, publisher events.Publisher) api.Module {
	ctl := NewNewsController(store, publisher)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/news", ctl.listNews)
		c.GET("/news/:id", ctl.getNews)
		c.POST("/news", ctl.createNews)
		c.PATCH("/news/:id", ctl.updateNews)
		c.DELETE("/news/:id", ctl.deleteNews)

		c.PATCH("/news/:id/activation", ctl.setActivation)
	})
}

func (n *NewsController) listNews(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var kindFilter *string
	if kind := ctx.Query("kind"); kind != "" {
		switch kind {
		case model.NewsKindRegular, model.NewsKindLive, model.NewsKindRegularLive:
			kindFilter = &kind
		default:
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid kind"}
		}
	}

	list, err := n.store.ListNews(kindFilter)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list news"}
	}

	now := n.now()
	response := make([]packets.NewsResponse, 0, len(list))
	for _, it := range list {
		response = append(response, packets.NewNewsResponse(now, it))
	}
	return response, nil
}

func (n *NewsController) getNews(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	item, err := n.store.GetNewsByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "news not found"}
	}
	return packets.NewNewsResponse(n.now(), item), nil
}

func (n *NewsController) createNews(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	now := n.now()
	var schedule activation.Schedule

	if request.Kind == model.NewsKindRegular {
		// plain article: the checkbox is a publish flag, no window applies
		schedule = activation.Schedule{
			Start:         now,
			DurationHours: activation.MinDurationHours,
			Active:        request.ForceActiveNow,
		}
	} else {
		if request.ScheduledStart.IsZero() {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "scheduled_start is required for live news"}
		}
		if !activation.ValidDuration(request.DurationHours) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "duration_hours must be between 1 and 168"}
		}
		schedule = activation.ResolveSubmission(now, request.ScheduledStart, request.DurationHours, request.ForceActiveNow)
	}

	item, err := n.store.CreateNews(
		request.Kind,
		request.TitleEn, request.TitleAr, request.BodyEn, request.BodyAr,
		request.Media,
		schedule,
		user.ID,
	)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create news"}
	}

	response := packets.NewNewsResponse(now, item)
	if response.Visible {
		n.publisher.PublishVisibility("news", item.ID, true)
	}
	return response, nil
}

func (n *NewsController) updateNews(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	existing, err := n.store.GetNewsByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "news not found"}
	}

	if err := n.store.UpdateNews(
		id,
		request.TitleEn, request.TitleAr, request.BodyEn, request.BodyAr,
		request.Media,
	); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update news"}
	}

	now := n.now()
	wasVisible := packets.NewNewsResponse(now, existing).Visible

	if request.ScheduledStart != nil || request.DurationHours != nil || request.ForceActiveNow != nil {
		var schedule activation.Schedule
		if existing.Kind == model.NewsKindRegular {
			schedule = existing.Schedule()
			if request.ForceActiveNow != nil {
				schedule.Active = *request.ForceActiveNow
			}
		} else {
			start := existing.ScheduledStart
			if request.ScheduledStart != nil {
				start = *request.ScheduledStart
			}
			hours := existing.DurationHours
			if request.DurationHours != nil {
				hours = *request.DurationHours
			}
			force := false
			if request.ForceActiveNow != nil {
				force = *request.ForceActiveNow
			}
			schedule = activation.ResolveSubmission(now, start, hours, force)
		}

		if err := n.store.SetNewsSchedule(id, schedule); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update news schedule"}
		}
		existing.ApplySchedule(schedule)
		if visible := packets.NewNewsResponse(now, existing).Visible; visible != wasVisible {
			n.publisher.PublishVisibility("news", id, visible)
		}
	}

	updated, err := n.store.GetNewsByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load updated news"}
	}
	return packets.NewNewsResponse(now, updated), nil
}

// PATCH /news/:id/activation
func (n *NewsController) setActivation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.SetActivationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	item, err := n.store.GetNewsByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "news not found"}
	}

	now := n.now()
	var schedule activation.Schedule
	switch {
	case !item.Timed():
		schedule = item.Schedule()
		schedule.Active = *request.Active
		schedule.ManuallyReactivated = false
	case *request.Active:
		schedule = activation.Reactivate(now, item.Schedule())
	default:
		schedule = activation.Deactivate(item.Schedule())
	}

	if err := n.store.SetNewsSchedule(id, schedule); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update activation"}
	}

	item.ApplySchedule(schedule)
	response := packets.NewNewsResponse(now, item)
	n.publisher.PublishVisibility("news", id, response.Visible)
	return response, nil
}

func (n *NewsController) deleteNews(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := n.store.GetNewsByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "news not found"}
	}
	if err := n.store.DeleteNews(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete news"}
	}
	n.publisher.PublishVisibility("news", id, false)
	return gin.H{"message": "deleted"}, nil
}
