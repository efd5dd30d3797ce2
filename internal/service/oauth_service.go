package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"groupchat-be/internal/config"
	"groupchat-be/internal/dto"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	// GetLoginURL returns the provider redirect URL and the state nonce
	// embedded in it; the caller is responsible for round-tripping the
	// state to the callback.
	GetLoginURL(provider string) (url string, state string, err error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
}

type oauthService struct {
	userService IUserService
	cfg         *config.Config
	googleConf  *oauth2.Config
}

func NewOAuthService(userService IUserService, cfg *config.Config) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.Auth.GoogleClientID,
		ClientSecret: cfg.Auth.GoogleClientSecret,
		RedirectURL:  cfg.Auth.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		userService: userService,
		cfg:         cfg,
		googleConf:  conf,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, string, error) {
	if provider != "google" {
		return "", "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), state, nil
}

// HandleCallback exchanges the authorization code, reads the Google profile
// and upserts the user keyed by the provider subject, then issues a session
// token. The subject is the opaque identity id everywhere downstream.
func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	if provider != "google" {
		return nil, errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %w", err)
	}

	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}
	if googleUser.ID == "" {
		return nil, errors.New("google profile missing subject id")
	}

	upsertReq := &dto.UpsertUserRequest{}
	if googleUser.Name != "" {
		upsertReq.Name = &googleUser.Name
	}

	user, err := s.userService.Upsert(ctx, googleUser.ID, upsertReq)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	sessionToken, err := IssueToken(user.Id, s.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: sessionToken,
		User:  *user,
	}, nil
}
