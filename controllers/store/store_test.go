package storeController_test

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
	storeRoutes "rately/routers/storeRoutes"

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

	db, err := gorm.Open(sqlite.Open("file:storetest?mode=memory&cache=shared"), &gorm.Config{})
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
	storeRoutes.SetupStoreRoutes(app)
	return app
}

func doGet(t *testing.T, app *fiber.App, path, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
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

func storeNames(payload map[string]interface{}) []string {
	stores := payload["data"].(map[string]interface{})["stores"].([]interface{})
	names := make([]string, len(stores))
	for i, s := range stores {
		names[i] = s.(map[string]interface{})["name"].(string)
	}
	return names
}

func TestListStoresRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doGet(t, app, "/stores/", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListStoresAll(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, payload := doGet(t, app, "/stores/", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, storeNames(payload), 5)

	// Default sort is by average rating, best first
	assert.Equal(t, "Downtown Coffee House", storeNames(payload)[0])
}

func TestListStoresSearch(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, payload := doGet(t, app, "/stores/?search=Tech", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Tech Zone Electronics"}, storeNames(payload))
}

func TestListStoresCategoryFilter(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, payload := doGet(t, app, "/stores/?category=Grocery", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Fresh Market Grocery"}, storeNames(payload))
}

func TestListStoresSortByName(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, payload := doGet(t, app, "/stores/?sortBy=name", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Downtown Coffee House", storeNames(payload)[0])
	assert.Equal(t, "Tech Zone Electronics", storeNames(payload)[4])
}

func TestListStoresInvalidSort(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, _ := doGet(t, app, "/stores/?sortBy=bogus", token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetStore(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, payload := doGet(t, app, "/stores/1", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	store := payload["data"].(map[string]interface{})
	assert.Equal(t, "Fresh Market Grocery", store["name"])
	assert.Contains(t, store, "isOpen")
	// Mike has a seeded 5-star rating on store 1
	assert.EqualValues(t, 5, store["myRating"])
}

func TestGetStoreNotFound(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, _ := doGet(t, app, "/stores/999", token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
