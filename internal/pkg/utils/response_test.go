package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/w3w-geocoder/internal/pkg/errors"
)

func TestSendError(t *testing.T) {
	app := fiber.New()
	app.Get("/remote", func(c *fiber.Ctx) error {
		return SendError(c, apperrors.Remote("InvalidKey", "bad key", fiber.StatusUnauthorized))
	})
	app.Get("/unknown", func(c *fiber.Ctx) error {
		return SendError(c, errors.New("boom"))
	})
	app.Get("/raw", func(c *fiber.Ctx) error {
		return SendRaw(c, json.RawMessage(`{"type":"FeatureCollection"}`), nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/remote", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"code":"InvalidKey","message":"bad key"}}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/unknown", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "INTERNAL_SERVER_ERROR")

	resp, err = app.Test(httptest.NewRequest("GET", "/raw", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"data":{"type":"FeatureCollection"}}`, string(body))
}
