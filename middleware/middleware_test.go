package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"learnhub/models"
	"learnhub/testutils"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(42, testSecret, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT(1, testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT(1, testSecret, -time.Hour)
	require.NoError(t, err)
	zeroID, err := GenerateJWT(0, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		secret    string
		expectErr error
	}{
		{name: "different secret", token: valid, secret: "other-secret", expectErr: ErrInvalidToken},
		{name: "expired", token: expired, secret: testSecret, expectErr: ErrExpiredToken},
		{name: "garbage", token: "not-a-jwt-token", secret: testSecret, expectErr: ErrInvalidToken},
		{name: "empty", token: "", secret: testSecret, expectErr: ErrInvalidToken},
		{name: "zero id", token: zeroID, secret: testSecret, expectErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseJWT(tt.token, tt.secret)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Zero(t, id)
		})
	}
}

func newProtectedApp(db *gorm.DB, handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(zap.NewNop())})
	chain := append([]fiber.Handler{JWTMiddleware(db, testSecret)}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		user, _ := CurrentUser(c)
		return JsonResponse(c, fiber.StatusOK, user.Profile())
	})
	app.Get("/protected", chain...)
	return app
}

func doGet(t *testing.T, app *fiber.App, authorization string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("GET", "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestJWTMiddleware(t *testing.T) {
	db := testutils.SetupTestDB(t)
	user := testutils.CreateTestUser(db)
	app := newProtectedApp(db)

	valid, err := GenerateJWT(user.ID, testSecret, time.Hour)
	require.NoError(t, err)
	foreign, err := GenerateJWT(user.ID, "other-secret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT(user.ID, testSecret, -time.Minute)
	require.NoError(t, err)
	ghost, err := GenerateJWT(user.ID+1000, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "missing header", header: "", wantStatus: 401, wantError: "Access denied"},
		{name: "not bearer", header: "Basic abc", wantStatus: 401, wantError: "Access denied"},
		{name: "foreign secret", header: "Bearer " + foreign, wantStatus: 400, wantError: "Invalid token"},
		{name: "expired", header: "Bearer " + expired, wantStatus: 400, wantError: "Invalid token"},
		{name: "unknown user", header: "Bearer " + ghost, wantStatus: 401, wantError: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doGet(t, app, tt.header)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}

	t.Run("valid token", func(t *testing.T) {
		status, body := doGet(t, app, "Bearer "+valid)
		assert.Equal(t, 200, status)
		assert.Equal(t, float64(user.ID), body["id"])
		assert.Equal(t, user.Email, body["email"])
		assert.NotContains(t, body, "password")
	})
}

func TestRequireRole(t *testing.T) {
	db := testutils.SetupTestDB(t)
	student := testutils.CreateTestUser(db)
	instructor := testutils.CreateTestUser(db, testutils.WithRole(models.RoleInstructor))
	app := newProtectedApp(db, RequireRole(models.RoleInstructor))

	studentToken, err := GenerateJWT(student.ID, testSecret, time.Hour)
	require.NoError(t, err)
	instructorToken, err := GenerateJWT(instructor.ID, testSecret, time.Hour)
	require.NoError(t, err)

	status, body := doGet(t, app, "Bearer "+studentToken)
	assert.Equal(t, 403, status)
	assert.Equal(t, "Access forbidden", body["error"])

	status, body = doGet(t, app, "Bearer "+instructorToken)
	assert.Equal(t, 200, status)
	assert.Equal(t, models.RoleInstructor, body["role"])
}

func TestRequireRole_WithoutAuthentication(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(zap.NewNop())})
	app.Get("/protected", RequireRole(models.RoleInstructor), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	status, body := doGet(t, app, "")
	assert.Equal(t, 401, status)
	assert.Equal(t, "Access denied", body["error"])
}
