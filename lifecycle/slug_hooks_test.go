package lifecycle_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/aurelienmx/skillmarket/slugs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.Language{},
		&models.Job{},
		&models.HardSkill{},
		&models.SoftSkill{},
		&models.Tag{},
		&models.Provider{},
		&models.Client{},
		&models.Service{},
		&models.Article{},
		&models.AvailabilitySlot{},
		&models.Booking{},
		&models.Review{},
	))
	return db
}

func TestProviderCreate_AssignsSuffixedSlug(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(1))
	db := newTestDB(t)

	provider := models.Provider{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)

	assert.Regexp(t, `^jean-dupont-[0-9][A-Z]{9}$`, provider.Slug)

	var stored models.Provider
	require.NoError(t, db.First(&stored, provider.ID).Error)
	assert.Equal(t, provider.Slug, stored.Slug)
}

func TestProviderUpdate_LastNameChangeRegeneratesSlug(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(2))
	db := newTestDB(t)

	provider := models.Provider{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)
	originalSlug := provider.Slug

	provider.LastName = "Martin"
	require.NoError(t, db.Save(&provider).Error)

	assert.NotEqual(t, originalSlug, provider.Slug)
	assert.Regexp(t, `^jean-martin-[0-9][A-Z]{9}$`, provider.Slug)

	var stored models.Provider
	require.NoError(t, db.First(&stored, provider.ID).Error)
	assert.Equal(t, provider.Slug, stored.Slug, "regenerated slug must reach the database")
}

func TestProviderUpdate_UnrelatedFieldKeepsSlug(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(3))
	db := newTestDB(t)

	provider := models.Provider{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)
	originalSlug := provider.Slug

	city := "Lyon"
	provider.City = &city
	require.NoError(t, db.Save(&provider).Error)

	assert.Equal(t, originalSlug, provider.Slug, "suffix must survive unrelated edits")

	var stored models.Provider
	require.NoError(t, db.First(&stored, provider.ID).Error)
	assert.Equal(t, originalSlug, stored.Slug)
}

func TestProviderCreate_MissingNameFails(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(4))
	db := newTestDB(t)

	provider := models.Provider{Email: "anon@example.com", Password: "x"}
	err := db.Create(&provider).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, slugs.ErrEmptySource)

	var count int64
	db.Model(&models.Provider{}).Count(&count)
	assert.Zero(t, count, "entity must not be persisted without a slug source")
}

func TestServiceCreate_TitleSlugHasNoSuffix(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(5))
	db := newTestDB(t)

	provider := models.Provider{FirstName: "Marie", LastName: "Dubois", Email: "marie@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)

	service := models.Service{ProviderID: provider.ID, Title: "Conseil en IA", Price: 120}
	require.NoError(t, db.Create(&service).Error)

	assert.Equal(t, "conseil-en-ia", service.Slug)
}

func TestServiceCreate_DuplicateTitleHitsUniqueIndex(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(6))
	db := newTestDB(t)

	provider := models.Provider{FirstName: "Marie", LastName: "Dubois", Email: "marie@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)

	first := models.Service{ProviderID: provider.ID, Title: "Conseil en IA"}
	require.NoError(t, db.Create(&first).Error)

	// Title slugs carry no suffix and no collision loop; the unique index
	// on the table is the backstop.
	second := models.Service{ProviderID: provider.ID, Title: "Conseil en IA"}
	assert.Error(t, db.Create(&second).Error)
}

func TestArticleUpdate_TitleChangeRegeneratesSlug(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(7))
	db := newTestDB(t)

	provider := models.Provider{FirstName: "Marie", LastName: "Dubois", Email: "marie@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)

	article := models.Article{ProviderID: provider.ID, Title: "Guide complet de l'IA", Content: "..."}
	require.NoError(t, db.Create(&article).Error)
	assert.Equal(t, "guide-complet-de-l'ia", article.Slug)

	article.Title = "Guide avancé de l'IA"
	require.NoError(t, db.Save(&article).Error)
	assert.Equal(t, "guide-avance-de-l'ia", article.Slug)
}

func TestReferenceCreate_NameSlug(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(8))
	db := newTestDB(t)

	country := models.Country{Name: "Sénégal"}
	require.NoError(t, db.Create(&country).Error)
	assert.Equal(t, "senegal", country.Slug)

	tag := models.Tag{Name: "E-commerce"}
	require.NoError(t, db.Create(&tag).Error)
	assert.Equal(t, "e-commerce", tag.Slug)
}

func TestProviderCreate_PresetSlugIsKept(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(9))
	db := newTestDB(t)

	provider := models.Provider{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com", Password: "x", Slug: "custom-handle"}
	require.NoError(t, db.Create(&provider).Error)
	assert.Equal(t, "custom-handle", provider.Slug)
}
