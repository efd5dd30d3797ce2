package service

import (
	"context"
	"strings"
	"time"

	"groupchat-be/internal/config"
	"groupchat-be/internal/dto"
	"groupchat-be/internal/entity"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/repository/specification"
	"groupchat-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

// IssueToken signs a JWT carrying the user id, the claim the middleware and
// websocket handler read back.
func IssueToken(userId string, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	existing, err := repo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("Email already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	id := uuid.NewString()
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultUserName(id)
	}

	email := req.Email
	user := &entity.User{
		Id:           id,
		Name:         name,
		Email:        &email,
		PasswordHash: &hashStr,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, serverutils.NewUnauthenticatedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthenticatedError("Invalid credentials")
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	token, err := IssueToken(user.Id, s.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}
