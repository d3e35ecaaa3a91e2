package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/http/api/public/packets"
	"github.com/athar-cms/athar/internal/model"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	db.Store

	activities []model.Activity
	news       []model.News
}

func (f *fakeStore) ListActivities() ([]model.Activity, error) { return f.activities, nil }
func (f *fakeStore) ListNews(kind *string) ([]model.News, error) {
	return f.news, nil
}

func contentRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewContentController(store)
	ctl.now = func() time.Time { return testNow }

	r := gin.New()
	c := &api.Controller{Group: r.Group("/")}
	c.PUBLIC_GET("/activities", ctl.visibleActivities)
	c.PUBLIC_GET("/news", ctl.visibleNews)
	return r
}

func get[T any](t *testing.T, r *gin.Engine, path string) T {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status = %d, body = %s", path, w.Code, w.Body.String())
	}
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestVisibleActivitiesFiltersHiddenOnes(t *testing.T) {
	store := &fakeStore{activities: []model.Activity{
		{ID: 1, TitleEn: "Live", ScheduledStart: testNow.Add(-time.Hour), DurationHours: 24, IsActive: true},
		{ID: 2, TitleEn: "Upcoming", ScheduledStart: testNow.Add(time.Hour), DurationHours: 24},
		{ID: 3, TitleEn: "Expired", ScheduledStart: testNow.Add(-48 * time.Hour), DurationHours: 24},
		{ID: 4, TitleEn: "Pinned", ScheduledStart: testNow.Add(-48 * time.Hour), DurationHours: 24,
			IsActive: true, IsManuallyReactivated: true},
	}}

	got := get[[]packets.PublicActivity](t, contentRouter(store), "/activities")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("visible activities: %+v", got)
	}
}

func TestVisibleNewsMixesKinds(t *testing.T) {
	store := &fakeStore{news: []model.News{
		// regular articles follow the plain publish flag
		{ID: 1, Kind: model.NewsKindRegular, IsActive: true},
		{ID: 2, Kind: model.NewsKindRegular, IsActive: false},
		// live articles follow the window even when the stored flag is stale
		{ID: 3, Kind: model.NewsKindLive, ScheduledStart: testNow.Add(-time.Hour), DurationHours: 2, IsActive: true},
		{ID: 4, Kind: model.NewsKindLive, ScheduledStart: testNow.Add(-72 * time.Hour), DurationHours: 2, IsActive: true},
		// an elapsed regularLive is pending deletion and must not render
		{ID: 5, Kind: model.NewsKindRegularLive, ScheduledStart: testNow.Add(-72 * time.Hour), DurationHours: 2, IsActive: true},
	}}

	got := get[[]packets.PublicNews](t, contentRouter(store), "/news")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("visible news: %+v", got)
	}
}
