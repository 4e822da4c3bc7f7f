package ownerController_test

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
	ownerRoutes "rately/routers/ownerRoutes"

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

	db, err := gorm.Open(sqlite.Open("file:ownertest?mode=memory&cache=shared"), &gorm.Config{})
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
	ownerRoutes.SetupOwnerRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
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

	resp, payload := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    email,
		"password": database.DemoPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return payload["data"].(map[string]interface{})["token"].(string)
}

func TestOwnerDashboard(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "srikanth@freshmarket.com")

	resp, payload := doJSON(t, app, "GET", "/owner/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	store := data["store"].(map[string]interface{})
	assert.Equal(t, "Fresh Market Grocery", store["name"])
	assert.Contains(t, data, "isOpen")

	reviews := data["recentReviews"].([]interface{})
	require.Len(t, reviews, 2)
	for _, r := range reviews {
		assert.False(t, r.(map[string]interface{})["responded"].(bool))
	}
}

func TestOwnerRoutesDenyRegularUsers(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "mike.chen@email.com")

	resp, _ := doJSON(t, app, "GET", "/owner/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestReplyToReview(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "srikanth@freshmarket.com")

	// Review 1 belongs to store 1, which Srikanth owns
	resp, payload := doJSON(t, app, "POST", "/owner/reviews/1/reply", token, fiber.Map{
		"reply": "Thank you so much for your kind words!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	review := payload["data"].(map[string]interface{})
	assert.Equal(t, "Thank you so much for your kind words!", review["reply"])
	assert.NotNil(t, review["repliedAt"])

	// The review now shows as responded
	resp, payload = doJSON(t, app, "GET", "/owner/reviews?status=responded", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reviews := payload["data"].(map[string]interface{})["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	assert.True(t, reviews[0].(map[string]interface{})["responded"].(bool))
}

func TestReplyToForeignReviewDenied(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "srikanth@freshmarket.com")

	// Review 4 belongs to store 3, owned by someone else
	resp, _ := doJSON(t, app, "POST", "/owner/reviews/4/reply", token, fiber.Map{
		"reply": "Not my store, not my review.",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAnalytics(t *testing.T) {
	app := setupTestApp(t)
	token := login(t, app, "srikanth@freshmarket.com")

	resp, payload := doJSON(t, app, "GET", "/owner/analytics", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.EqualValues(t, 15247, data["totalViews"])
	assert.InDelta(t, 12.5, data["monthlyGrowth"].(float64), 0.001)
	assert.Len(t, data["weeklyStats"].([]interface{}), 7)
}
