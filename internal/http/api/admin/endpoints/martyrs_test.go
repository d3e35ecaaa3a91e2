package endpoints

import (
	"bytes"
	"database/sql"
	"net/http"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/http/api"
	"github.com/athar-cms/athar/internal/model"
)

func (f *fakeStore) CreateMartyr(nameEn, nameAr, bioEn, bioAr string, birthDate *time.Time, martyrdomDate time.Time, locationID *int, media []string, slug string, createdBy int) (model.Martyr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := model.Martyr{
		ID:            f.nextID,
		NameEn:        nameEn,
		NameAr:        nameAr,
		BioEn:         bioEn,
		BioAr:         bioAr,
		BirthDate:     birthDate,
		MartyrdomDate: martyrdomDate,
		LocationID:    locationID,
		Media:         pq.StringArray(media),
		Slug:          slug,
		CreatedBy:     createdBy,
	}
	f.nextID++
	f.martyrs[m.ID] = m
	return m, nil
}

func (f *fakeStore) GetMartyrByID(id int) (model.Martyr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.martyrs[id]
	if !ok {
		return model.Martyr{}, sql.ErrNoRows
	}
	return m, nil
}

func (f *fakeStore) SearchMartyrs(name *string, locationID *int) ([]model.Martyr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Martyr, 0, len(f.martyrs))
	for _, m := range f.martyrs {
		if name != nil && !strings.Contains(strings.ToLower(m.NameEn), strings.ToLower(*name)) &&
			!strings.Contains(m.NameAr, *name) {
			continue
		}
		if locationID != nil && (m.LocationID == nil || *m.LocationID != *locationID) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func martyrRouter(store db.Store) *gin.Engine {
	ctl := NewMartyrController(store, "https://memorial.example.org")
	return newTestRouter(func(c *api.Controller) {
		c.GET("/martyrs", ctl.listMartyrs)
		c.GET("/martyrs/:id", ctl.getMartyr)
		c.POST("/martyrs", ctl.createMartyr)
		c.GET("/martyrs/:id/qr", ctl.martyrQR)
	})
}

func TestCreateAndSearchMartyrs(t *testing.T) {
	store := newFakeStore()
	r := martyrRouter(store)

	for _, body := range []gin.H{
		{"name_en": "Ahmad Saleh", "name_ar": "أحمد صالح", "martyrdom_date": testNow, "slug": "ahmad-saleh"},
		{"name_en": "Layla Hassan", "name_ar": "ليلى حسن", "martyrdom_date": testNow, "slug": "layla-hassan"},
	} {
		if w := doJSON(t, r, http.MethodPost, "/martyrs", body); w.Code != http.StatusOK {
			t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/martyrs?name=layla", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search: status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[[]model.Martyr](t, w)
	if len(got) != 1 || got[0].Slug != "layla-hassan" {
		t.Fatalf("search result: %+v", got)
	}
}

func TestMartyrQRStreamsPNG(t *testing.T) {
	store := newFakeStore()
	r := martyrRouter(store)

	if _, err := store.CreateMartyr("Ahmad Saleh", "", "", "", nil, testNow, nil, nil, "ahmad-saleh", 1); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodGet, "/martyrs/1/qr", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatal("body is not a PNG")
	}

	if w := doJSON(t, r, http.MethodGet, "/martyrs/99/qr", nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing martyr: status = %d, want 404", w.Code)
	}
}
