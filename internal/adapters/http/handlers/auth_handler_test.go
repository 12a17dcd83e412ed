package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"helha-jobapp/internal/config"
	"helha-jobapp/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenMins: 60},
	}
	handler := NewAuthHandler(nil, cfg)

	app := fiber.New()
	app.Get("/auth/session", handler.Session)
	return app
}

func getSession(t *testing.T, app *fiber.App, authHeader string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest("GET", "/auth/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestSessionWithValidToken(t *testing.T) {
	app := sessionApp(t)

	token, err := jwt.GenerateAccessToken(7, "acme", "jobs@acme.be", "Anna", "Claes", "COMPANY", "any-secret", 60)
	require.NoError(t, err)

	data := getSession(t, app, "Bearer "+token)
	assert.Equal(t, true, data["authenticated"])
	assert.Equal(t, "acme", data["username"])
	assert.Equal(t, "COMPANY", data["role"])
	assert.Equal(t, "/company", data["redirect_to"])
}

func TestSessionWithoutToken(t *testing.T) {
	app := sessionApp(t)

	data := getSession(t, app, "")
	assert.Equal(t, false, data["authenticated"])
	assert.Equal(t, "/login", data["redirect_to"])
}

func TestSessionWithMalformedToken(t *testing.T) {
	app := sessionApp(t)

	data := getSession(t, app, "Bearer not.a.token")
	assert.Equal(t, false, data["authenticated"])
}

func TestSessionWithExpiredToken(t *testing.T) {
	app := sessionApp(t)

	token, err := jwt.GenerateAccessToken(7, "acme", "jobs@acme.be", "Anna", "Claes", "COMPANY", "any-secret", -1)
	require.NoError(t, err)

	data := getSession(t, app, "Bearer "+token)
	assert.Equal(t, false, data["authenticated"])
}
