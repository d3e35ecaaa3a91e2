package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/admin/packets"
	"github.com/athar-cms/athar/internal/model"
)

func newsRouter(store db.Store, pub *fakePublisher) *gin.Engine {
	ctl := NewNewsController(store, pub)
	ctl.now = func() time.Time { return testNow }
	return newTestRouter(func(c *api.Controller) {
		c.GET("/news", ctl.listNews)
		c.GET("/news/:id", ctl.getNews)
		c.POST("/news", ctl.createNews)
		c.PATCH("/news/:id", ctl.updateNews)
		c.DELETE("/news/:id", ctl.deleteNews)
		c.PATCH("/news/:id/activation", ctl.setActivation)
	})
}

func TestCreateRegularNewsIsAPlainPublishFlag(t *testing.T) {
	store := newFakeStore()
	r := newsRouter(store, &fakePublisher{})

	// No schedule fields at all: a regular article does not need a window.
	w := doJSON(t, r, http.MethodPost, "/news", gin.H{
		"kind":             model.NewsKindRegular,
		"title_en":         "Archive opened",
		"force_active_now": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[packets.NewsResponse](t, w)
	if !got.Visible || got.Phase != "" {
		t.Fatalf("published regular article: visible=%v phase=%q", got.Visible, got.Phase)
	}

	// Unchecked box means a draft.
	w = doJSON(t, r, http.MethodPost, "/news", gin.H{
		"kind":     model.NewsKindRegular,
		"title_en": "Draft",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := decode[packets.NewsResponse](t, w); got.Visible {
		t.Fatalf("draft should be hidden: %+v", got)
	}
}

func TestCreateLiveNewsValidation(t *testing.T) {
	r := newsRouter(newFakeStore(), &fakePublisher{})

	// Live news without a start time is rejected.
	w := doJSON(t, r, http.MethodPost, "/news", gin.H{
		"kind":           model.NewsKindLive,
		"title_en":       "Breaking",
		"duration_hours": 24,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing start: status = %d, want 400", w.Code)
	}

	// And without a valid window length.
	w = doJSON(t, r, http.MethodPost, "/news", gin.H{
		"kind":            model.NewsKindLive,
		"title_en":        "Breaking",
		"scheduled_start": testNow,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing duration: status = %d, want 400", w.Code)
	}
}

func TestCreateLiveNewsInsideWindow(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	r := newsRouter(store, pub)

	w := doJSON(t, r, http.MethodPost, "/news", gin.H{
		"kind":            model.NewsKindLive,
		"title_en":        "Ceremony underway",
		"scheduled_start": testNow.Add(-time.Hour),
		"duration_hours":  6,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[packets.NewsResponse](t, w)
	if got.Phase != "auto_active" || !got.Visible {
		t.Fatalf("in-window live news: %+v", got)
	}
	if ev := pub.last(t); ev.collection != "news" || !ev.visible {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestNewsActivationToggle(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	r := newsRouter(store, pub)

	// Expired live item.
	if _, err := store.CreateNews(model.NewsKindLive, "Old bulletin", "", "", "", nil,
		activation.Schedule{Start: testNow.Add(-72 * time.Hour), DurationHours: 24}, 1); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodPatch, "/news/1/activation", gin.H{"active": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[packets.NewsResponse](t, w)
	if got.Phase != "manual_permanent" || !got.Visible {
		t.Fatalf("post-expiry reactivate: %+v", got)
	}

	// A regular article toggled on must never grow the manual flag.
	if _, err := store.CreateNews(model.NewsKindRegular, "Plain article", "", "", "", nil,
		activation.Schedule{Start: testNow, DurationHours: activation.MinDurationHours}, 1); err != nil {
		t.Fatal(err)
	}
	w = doJSON(t, r, http.MethodPatch, "/news/2/activation", gin.H{"active": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got = decode[packets.NewsResponse](t, w)
	if !got.Visible || got.IsManuallyReactivated || got.Phase != "" {
		t.Fatalf("regular toggle: %+v", got)
	}
	if ev := pub.last(t); !ev.visible {
		t.Fatalf("expected visible event, got %+v", ev)
	}
}

func TestListNewsKindFilter(t *testing.T) {
	store := newFakeStore()
	r := newsRouter(store, &fakePublisher{})

	seedSchedule := activation.Schedule{Start: testNow, DurationHours: 24, Active: true}
	for _, kind := range []string{model.NewsKindRegular, model.NewsKindLive, model.NewsKindRegularLive} {
		if _, err := store.CreateNews(kind, "item "+kind, "", "", "", nil, seedSchedule, 1); err != nil {
			t.Fatal(err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/news?kind=live", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[[]packets.NewsResponse](t, w)
	if len(got) != 1 || got[0].Kind != model.NewsKindLive {
		t.Fatalf("kind filter: %+v", got)
	}

	if w := doJSON(t, r, http.MethodGet, "/news?kind=nonsense", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad kind: status = %d, want 400", w.Code)
	}
}
