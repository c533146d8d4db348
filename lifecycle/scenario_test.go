package lifecycle_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/aurelienmx/skillmarket/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks a provider through the whole lifecycle: signup, publishing a
// service, taking a booking through accept and cancel, and finally account
// deletion with its upload subtree.
func TestProviderLifecycle(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(99))
	db := newTestDB(t)

	previous := uploads.Default
	uploads.Default = &uploads.Storage{Root: t.TempDir()}
	t.Cleanup(func() { uploads.Default = previous })

	provider := models.Provider{FirstName: "Marie", LastName: "Dubois", Email: "marie@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)
	assert.Regexp(t, `^marie-dubois-[0-9][A-Z]{9}$`, provider.Slug)

	service := models.Service{ProviderID: provider.ID, Title: "Conseil en IA", Price: 150}
	require.NoError(t, db.Create(&service).Error)
	assert.Equal(t, "conseil-en-ia", service.Slug)

	profilePic := filepath.Join(uploads.Default.ProviderDir(provider.ID), "profile.png")
	serviceCover := filepath.Join(uploads.Default.ServiceDir(provider.ID, service.ID), "cover.png")
	writeUpload(t, profilePic)
	writeUpload(t, serviceCover)

	client := models.Client{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com", Password: "x"}
	require.NoError(t, db.Create(&client).Error)

	slot := models.AvailabilitySlot{ProviderID: provider.ID, StartTime: "2026-09-01T10:00", EndTime: "2026-09-01T11:00"}
	require.NoError(t, db.Create(&slot).Error)

	booking := models.Booking{ClientID: client.ID, AvailabilitySlotID: slot.ID, Status: models.BookingStatusPending}
	require.NoError(t, db.Create(&booking).Error)
	assert.False(t, slotBooked(t, db, slot.ID))

	booking.Status = models.BookingStatusAccepted
	require.NoError(t, db.Save(&booking).Error)
	assert.True(t, slotBooked(t, db, slot.ID))

	require.NoError(t, db.Delete(&booking).Error)
	assert.False(t, slotBooked(t, db, slot.ID), "cancellation reopens the slot")

	// Account deletion: the service goes first so its own hook runs, then
	// the provider hook sweeps whatever is left under its subtree.
	require.NoError(t, db.Delete(&service).Error)
	assert.NoFileExists(t, serviceCover)

	require.NoError(t, db.Delete(&provider).Error)
	assert.NoFileExists(t, profilePic)
	_, err := os.Stat(uploads.Default.ProviderDir(provider.ID))
	assert.True(t, os.IsNotExist(err), "provider upload subtree should be gone")
}

func writeUpload(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))
}
