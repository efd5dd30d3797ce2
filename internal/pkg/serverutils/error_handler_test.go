package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/test", handler)
	return app
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", NewValidationError("bad input"), fiber.StatusBadRequest, "bad input"},
		{"not found", NewNotFoundError("missing"), fiber.StatusNotFound, "missing"},
		{"conflict", NewConflictError("exists", nil), fiber.StatusConflict, "exists"},
		{"unauthenticated", NewUnauthenticatedError("no token"), fiber.StatusUnauthorized, "no token"},
		{"fiber error passthrough", fiber.ErrTeapot, fiber.StatusTeapot, fiber.ErrTeapot.Message},
		{"unknown error", io.ErrUnexpectedEOF, fiber.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(ctx *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body Response[interface{}]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestErrorHandlerConflictCarriesData(t *testing.T) {
	existing := map[string]string{"id": "abc", "name": "Budget"}
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return NewConflictError("Topic already exists", existing)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body Response[map[string]string]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, existing, body.Data)
}

func TestErrorHandlerPassesSuccessThrough(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", "payload"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body Response[string]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "payload", body.Data)
}
