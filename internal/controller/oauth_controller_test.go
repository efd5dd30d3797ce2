package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"groupchat-be/internal/dto"
	"groupchat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOAuthService struct {
	url      string
	state    string
	response *dto.LoginResponse
	calls    int
}

func (s *stubOAuthService) GetLoginURL(provider string) (string, string, error) {
	if provider != "google" {
		return "", "", errors.New("unsupported provider")
	}
	return s.url, s.state, nil
}

func (s *stubOAuthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	s.calls++
	return s.response, nil
}

func newOAuthApp(svc *stubOAuthService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewOAuthController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestOAuthLoginPlantsStateCookie(t *testing.T) {
	svc := &stubOAuthService{url: "https://accounts.example/auth", state: "nonce-123"}
	app := newOAuthApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/oauth/google", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, svc.url, resp.Header.Get("Location"))

	var stateCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "oauth_state" {
			stateCookie = c
		}
	}
	require.NotNil(t, stateCookie)
	assert.Equal(t, "nonce-123", stateCookie.Value)
	assert.True(t, stateCookie.HttpOnly)
}

func TestOAuthCallbackVerifiesState(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		cookie     string
		wantStatus int
		wantCalls  int
	}{
		{"missing state", "code=abc", "nonce-123", fiber.StatusBadRequest, 0},
		{"mismatched state", "code=abc&state=evil", "nonce-123", fiber.StatusBadRequest, 0},
		{"no cookie", "code=abc&state=nonce-123", "", fiber.StatusBadRequest, 0},
		{"matching state", "code=abc&state=nonce-123", "nonce-123", fiber.StatusOK, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubOAuthService{
				response: &dto.LoginResponse{Token: "jwt", User: dto.UserResponse{Id: "sub-1"}},
			}
			app := newOAuthApp(svc)

			req := httptest.NewRequest("GET", "/api/oauth/google/callback?"+tt.query, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "oauth_state", Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, svc.calls, "callback must not reach the provider exchange on a bad state")
		})
	}
}

func TestOAuthCallbackMissingCode(t *testing.T) {
	svc := &stubOAuthService{}
	app := newOAuthApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/oauth/google/callback?state=x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, svc.calls)
}
