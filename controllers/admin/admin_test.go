package adminController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rately/config"
	"rately/database"
	"rately/models"
	adminRoutes "rately/routers/adminRoutes"
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

	db, err := gorm.Open(sqlite.Open("file:admintest?mode=memory&cache=shared"), &gorm.Config{})
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
	adminRoutes.SetupAdminRoutes(app)
	return app
}

func login(t *testing.T, app *fiber.App, email string) string {
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
	return payload["data"].(map[string]interface{})["token"].(string)
}

func doGet(t *testing.T, app *fiber.App, path, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestOverview(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "admin@storerating.com")

	resp, payload := doGet(t, app, "/admin/overview", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.EqualValues(t, 5, data["totalUsers"])
	assert.EqualValues(t, 5, data["totalStores"])
	assert.EqualValues(t, 5, data["totalRatings"])
	// Seeded ratings are 5, 4, 4, 5, 4
	assert.InDelta(t, 4.4, data["averageRating"].(float64), 0.001)
}

func TestListUsersRoleFilter(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "admin@storerating.com")

	resp, payload := doGet(t, app, "/admin/users?role=store_owner", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := payload["data"].(map[string]interface{})["users"].([]interface{})
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, models.RoleStoreOwner, u.(map[string]interface{})["role"])
	}
}

func TestListUsersSearch(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "admin@storerating.com")

	resp, payload := doGet(t, app, "/admin/users?search=Seattle", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := payload["data"].(map[string]interface{})["users"].([]interface{})
	require.Len(t, users, 1)
	assert.Equal(t, "David Kim", users[0].(map[string]interface{})["name"])
}

func TestListStoresSearch(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "admin@storerating.com")

	resp, payload := doGet(t, app, "/admin/stores?search=Coffee", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stores := payload["data"].(map[string]interface{})["stores"].([]interface{})
	require.Len(t, stores, 1)
	assert.Equal(t, "Downtown Coffee House", stores[0].(map[string]interface{})["name"])
}

// Non-admin roles get a terminal 403 from the role gate, not an error they
// can retry.
func TestAdminRoutesDenyOtherRoles(t *testing.T) {
	app := setupTestApp(t)

	for _, email := range []string{"mike.chen@email.com", "srikanth@freshmarket.com"} {
		token := login(t, app, email)
		resp, _ := doGet(t, app, "/admin/overview", token)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	}
}
