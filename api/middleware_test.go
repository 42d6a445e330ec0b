package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
)

// openTestDatabase connects to TEST_DATABASE_URL and migrates the schema,
// skipping when the variable is unset, same as the repository tests.
func openTestDatabase(t *testing.T) (database.Database, *gorm.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.Feedback{}))

	return database.New(db), db
}

func seedTestProfile(t *testing.T, db *gorm.DB, id string, isAdmin bool) {
	t.Helper()
	profile := models.Profile{ID: id, Name: "Test Driver", Region: "London", IsAdmin: isAdmin}
	require.NoError(t, db.Create(&profile).Error)
	t.Cleanup(func() {
		db.Where("id = ?", id).Delete(&models.Profile{})
	})
}

func TestRequireAdmin(t *testing.T) {
	d, db := openTestDatabase(t)
	m := newAuthMiddleware(d.ProfileRepo())

	suffix := time.Now().UnixNano()
	admin := fmt.Sprintf("admin-%d", suffix)
	driver := fmt.Sprintf("driver-%d", suffix)
	seedTestProfile(t, db, admin, true)
	seedTestProfile(t, db, driver, false)

	guarded := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(userID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
		if userID != "" {
			req = req.WithContext(ctxWithUserID(req.Context(), userID))
		}
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		return rec
	}

	t.Run("admin profile passes", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, call(admin).Code)
	})

	t.Run("non-admin profile is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call(driver).Code)
	})

	t.Run("missing profile is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call(fmt.Sprintf("ghost-%d", suffix)).Code)
	})

	t.Run("missing identity is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("").Code)
	})
}
