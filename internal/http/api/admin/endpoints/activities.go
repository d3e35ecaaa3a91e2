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

type ActivityController struct {
	store     db.Store
	publisher events.Publisher

	// now is swapped out in tests.
	now func() time.Time
}

func NewActivityController(store db.Store, publisher events.Publisher) *ActivityController {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &ActivityController{store: store, publisher: publisher, now: time.Now}
}

func ActivityModule(store db.Store, publisher events.Publisher) api.Module {
	ctl := NewActivityController(store, publisher)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/activities", ctl.listActivities)
		c.GET("/activities/:id", ctl.getActivity)
		c.POST("/activities", ctl.createActivity)
		c.PATCH("/activities/:id", ctl.updateActivity)
		c.DELETE("/activities/:id", ctl.deleteActivity)

		// dedicated on/off toggle
		c.PATCH("/activities/:id/activation", ctl.setActivation)
	})
}

func (a *ActivityController) listActivities(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := a.store.ListActivities()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list activities"}
	}

	now := a.now()
	response := make([]packets.ActivityResponse, 0, len(list))
	for _, it := range list {
		response = append(response, packets.NewActivityResponse(now, it))
	}
	return response, nil
}

func (a *ActivityController) getActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	activity, err := a.store.GetActivityByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not found"}
	}
	return packets.NewActivityResponse(a.now(), activity), nil
}

func (a *ActivityController) createActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.LocationID != nil {
		if _, err := a.store.GetLocationByID(*request.LocationID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
		}
	}

	now := a.now()
	schedule := activation.ResolveSubmission(now, request.ScheduledStart, request.DurationHours, request.ForceActiveNow)

	activity, err := a.store.CreateActivity(
		request.TitleEn, request.TitleAr, request.BodyEn, request.BodyAr,
		request.LocationID, request.Media,
		schedule,
		user.ID,
	)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create activity"}
	}

	if activation.Visible(now, schedule) {
		a.publisher.PublishVisibility("activities", activity.ID, true)
	}
	return packets.NewActivityResponse(now, activity), nil
}

func (a *ActivityController) updateActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	existing, err := a.store.GetActivityByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not found"}
	}
	if request.LocationID != nil {
		if _, err := a.store.GetLocationByID(*request.LocationID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
		}
	}

	if err := a.store.UpdateActivity(
		id,
		request.TitleEn, request.TitleAr, request.BodyEn, request.BodyAr,
		request.LocationID, request.Media,
	); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update activity"}
	}

	now := a.now()
	wasVisible := activation.Visible(now, existing.Schedule())

	// Any schedule field re-resolves activation exactly like a fresh
	// submission; the edit form always posts all three together.
	if request.ScheduledStart != nil || request.DurationHours != nil || request.ForceActiveNow != nil {
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

		schedule := activation.ResolveSubmission(now, start, hours, force)
		if err := a.store.SetActivitySchedule(id, schedule); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update activity schedule"}
		}
		if visible := activation.Visible(now, schedule); visible != wasVisible {
			a.publisher.PublishVisibility("activities", id, visible)
		}
	}

	updated, err := a.store.GetActivityByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load updated activity"}
	}
	return packets.NewActivityResponse(now, updated), nil
}

// PATCH /activities/:id/activation
func (a *ActivityController) setActivation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.SetActivationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	activity, err := a.store.GetActivityByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not found"}
	}

	now := a.now()
	var schedule activation.Schedule
	if *request.Active {
		schedule = activation.Reactivate(now, activity.Schedule())
	} else {
		schedule = activation.Deactivate(activity.Schedule())
	}

	if err := a.store.SetActivitySchedule(id, schedule); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update activation"}
	}

	a.publisher.PublishVisibility("activities", id, activation.Visible(now, schedule))

	activity.ApplySchedule(schedule)
	return packets.NewActivityResponse(now, activity), nil
}

func (a *ActivityController) deleteActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := a.store.GetActivityByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not found"}
	}
	if err := a.store.DeleteActivity(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete activity"}
	}
	a.publisher.PublishVisibility("activities", id, false)
	return gin.H{"message": "deleted"}, nil
}
