package dashboardController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rately/config"
	"rately/database"
	"rately/models"
	authRoutes "rately/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		DBDriver:  "sqlite",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open("file:dashtest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.LoginAudit{},
		&models.Store{},
		&models.Rating{},
	))
	database.Database = database.DbInstance{Db: db}
	require.NoError(t, database.SeedDemoData(db))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func resolveDashboard(t *testing.T, app *fiber.App, email string) map[string]interface{} {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(fiber.Map{
		"email":    email,
		"password": database.DemoPassword,
	}))
	req := httptest.NewRequest("POST", "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	token := payload["data"].(map[string]interface{})["token"].(string)

	req = httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload["data"].(map[string]interface{})
}

// Each role resolves to exactly one dashboard view.
func TestResolveByRole(t *testing.T) {
	app := setupTestApp(t)

	data := resolveDashboard(t, app, "admin@storerating.com")
	assert.Equal(t, "admin", data["view"])

	data = resolveDashboard(t, app, "mike.chen@email.com")
	assert.Equal(t, "user", data["view"])

	data = resolveDashboard(t, app, "srikanth@freshmarket.com")
	assert.Equal(t, "store_owner", data["view"])
	store := data["store"].(map[string]interface{})
	assert.Equal(t, "Fresh Market Grocery", store["name"])
}
