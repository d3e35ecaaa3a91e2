package db

import (
	"time"

	"github.com/athar-cms/athar/internal/activation"
	"github.com/athar-cms/athar/internal/model"
)

// Store exposes the persistence layer as an interface so endpoints and the
// reconciler can be exercised against fakes in tests.
type Store interface {
	// users
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// martyrs
	CreateMartyr(nameEn, nameAr, bioEn, bioAr string, birthDate *time.Time, martyrdomDate time.Time, locationID *int, media []string, slug string, createdBy int) (model.Martyr, error)
	GetMartyrByID(id int) (model.Martyr, error)
	GetMartyrBySlug(slug string) (model.Martyr, error)
	ListMartyrs() ([]model.Martyr, error)
	SearchMartyrs(name *string, locationID *int) ([]model.Martyr, error)
	UpdateMartyr(id int, nameEn, nameAr, bioEn, bioAr *string, birthDate, martyrdomDate *time.Time, locationID *int, media []string) error
	DeleteMartyr(id int) error

	// locations
	CreateLocation(nameEn, nameAr, descriptionEn, descriptionAr string, latitude, longitude *float64, media []string, createdBy int) (model.Location, error)
	GetLocationByID(id int) (model.Location, error)
	ListLocations() ([]model.Location, error)
	UpdateLocation(id int, nameEn, nameAr, descriptionEn, descriptionAr *string, latitude, longitude *float64, media []string) error
	DeleteLocation(id int) error

	// activities
	CreateActivity(titleEn, titleAr, bodyEn, bodyAr string, locationID *int, media []string, schedule activation.Schedule, createdBy int) (model.Activity, error)
	GetActivityByID(id int) (model.Activity, error)
	ListActivities() ([]model.Activity, error)
	ListReconcilableActivities() ([]model.Activity, error)
	UpdateActivity(id int, titleEn, titleAr, bodyEn, bodyAr *string, locationID *int, media []string) error
	SetActivitySchedule(id int, s activation.Schedule) error
	DeleteActivity(id int) error

	// news
	CreateNews(kind, titleEn, titleAr, bodyEn, bodyAr string, media []string, schedule activation.Schedule, createdBy int) (model.News, error)
	GetNewsByID(id int) (model.News, error)
	ListNews(kind *string) ([]model.News, error)
	ListReconcilableNews() ([]model.News, error)
	UpdateNews(id int, titleEn, titleAr, bodyEn, bodyAr *string, media []string) error
	SetNewsSchedule(id int, s activation.Schedule) error
	DeleteNews(id int) error

	// legends
	CreateLegend(titleEn, titleAr, storyEn, storyAr string, martyrID *int, media []string, createdBy int) (model.Legend, error)
	GetLegendByID(id int) (model.Legend, error)
	ListLegends(martyrID *int) ([]model.Legend, error)
	UpdateLegend(id int, titleEn, titleAr, storyEn, storyAr *string, martyrID *int, media []string) error
	DeleteLegend(id int) error
}

type pgStore struct{}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore returns a Store backed by the package-level connection.
func NewStore() Store {
	return &pgStore{}
}

func (*pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}
func (*pgStore) GetUserByEmail(email string) (*model.User, error) { return GetUserByEmail(email) }
func (*pgStore) GetUserByID(id int) (*model.User, error)          { return GetUserByID(id) }
func (*pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (*pgStore) CreateMartyr(nameEn, nameAr, bioEn, bioAr string, birthDate *time.Time, martyrdomDate time.Time, locationID *int, media []string, slug string, createdBy int) (model.Martyr, error) {
	return CreateMartyr(nameEn, nameAr, bioEn, bioAr, birthDate, martyrdomDate, locationID, media, slug, createdBy)
}
func (*pgStore) GetMartyrByID(id int) (model.Martyr, error)       { return GetMartyrByID(id) }
func (*pgStore) GetMartyrBySlug(slug string) (model.Martyr, error) { return GetMartyrBySlug(slug) }
func (*pgStore) ListMartyrs() ([]model.Martyr, error)             { return ListMartyrs() }
func (*pgStore) SearchMartyrs(name *string, locationID *int) ([]model.Martyr, error) {
	return SearchMartyrs(name, locationID)
}
func (*pgStore) UpdateMartyr(id int, nameEn, nameAr, bioEn, bioAr *string, birthDate, martyrdomDate *time.Time, locationID *int, media []string) error {
	return UpdateMartyr(id, nameEn, nameAr, bioEn, bioAr, birthDate, martyrdomDate, locationID, media)
}
func (*pgStore) DeleteMartyr(id int) error { return DeleteMartyr(id) }

func (*pgStore) CreateLocation(nameEn, nameAr, descriptionEn, descriptionAr string, latitude, longitude *float64, media []string, createdBy int) (model.Location, error) {
	return CreateLocation(nameEn, nameAr, descriptionEn, descriptionAr, latitude, longitude, media, createdBy)
}
func (*pgStore) GetLocationByID(id int) (model.Location, error) { return GetLocationByID(id) }
func (*pgStore) ListLocations() ([]model.Location, error)       { return ListLocations() }
func (*pgStore) UpdateLocation(id int, nameEn, nameAr, descriptionEn, descriptionAr *string, latitude, longitude *float64, media []string) error {
	return UpdateLocation(id, nameEn, nameAr, descriptionEn, descriptionAr, latitude, longitude, media)
}
func (*pgStore) DeleteLocation(id int) error { return DeleteLocation(id) }

func (*pgStore) CreateActivity(titleEn, titleAr, bodyEn, bodyAr string, locationID *int, media []string, schedule activation.Schedule, createdBy int) (model.Activity, error) {
	return CreateActivity(titleEn, titleAr, bodyEn, bodyAr, locationID, media, schedule, createdBy)
}
func (*pgStore) GetActivityByID(id int) (model.Activity, error) { return GetActivityByID(id) }
func (*pgStore) ListActivities() ([]model.Activity, error)      { return ListActivities() }
func (*pgStore) ListReconcilableActivities() ([]model.Activity, error) {
	return ListReconcilableActivities()
}
func (*pgStore) UpdateActivity(id int, titleEn, titleAr, bodyEn, bodyAr *string, locationID *int, media []string) error {
	return UpdateActivity(id, titleEn, titleAr, bodyEn, bodyAr, locationID, media)
}
func (*pgStore) SetActivitySchedule(id int, s activation.Schedule) error {
	return SetActivitySchedule(id, s)
}
func (*pgStore) DeleteActivity(id int) error { return DeleteActivity(id) }

func (*pgStore) CreateNews(kind, titleEn, titleAr, bodyEn, bodyAr string, media []string, schedule activation.Schedule, createdBy int) (model.News, error) {
	return CreateNews(kind, titleEn, titleAr, bodyEn, bodyAr, media, schedule, createdBy)
}
func (*pgStore) GetNewsByID(id int) (model.News, error)       { return GetNewsByID(id) }
func (*pgStore) ListNews(kind *string) ([]model.News, error)  { return ListNews(kind) }
func (*pgStore) ListReconcilableNews() ([]model.News, error)  { return ListReconcilableNews() }
func (*pgStore) UpdateNews(id int, titleEn, titleAr, bodyEn, bodyAr *string, media []string) error {
	return UpdateNews(id, titleEn, titleAr, bodyEn, bodyAr, media)
}
func (*pgStore) SetNewsSchedule(id int, s activation.Schedule) error { return SetNewsSchedule(id, s) }
func (*pgStore) DeleteNews(id int) error                             { return DeleteNews(id) }

func (*pgStore) CreateLegend(titleEn, titleAr, storyEn, storyAr string, martyrID *int, media []string, createdBy int) (model.Legend, error) {
	return CreateLegend(titleEn, titleAr, storyEn, storyAr, martyrID, media, createdBy)
}
func (*pgStore) GetLegendByID(id int) (model.Legend, error)     { return GetLegendByID(id) }
func (*pgStore) ListLegends(martyrID *int) ([]model.Legend, error) { return ListLegends(martyrID) }
func (*pgStore) UpdateLegend(id int, titleEn, titleAr, storyEn, storyAr *string, martyrID *int, media []string) error {
	return UpdateLegend(id, titleEn, titleAr, storyEn, storyAr, martyrID, media)
}
func (*pgStore) DeleteLegend(id int) error { return DeleteLegend(id) }
