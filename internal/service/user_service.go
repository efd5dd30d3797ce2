package service

import (
	"context"
	"strings"
	"time"

	"groupchat-be/internal/dto"
	"groupchat-be/internal/entity"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/repository/specification"
	"groupchat-be/internal/repository/unitofwork"
)

type IUserService interface {
	Upsert(ctx context.Context, userId string, req *dto.UpsertUserRequest) (*dto.UserResponse, error)
	GetProfile(ctx context.Context, userId string) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

// DefaultUserName derives a display name from the identity id so the UI
// never renders a blank identity.
func DefaultUserName(id string) string {
	fragment := id
	if len(fragment) > 6 {
		fragment = fragment[:6]
	}
	return "User-" + fragment
}

// Upsert creates the user on first sight and applies a partial update
// afterwards: fields the caller omitted never overwrite stored values.
func (s *userService) Upsert(ctx context.Context, userId string, req *dto.UpsertUserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(userId) == "" {
		return nil, serverutils.NewValidationError("User id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	if user == nil {
		name := DefaultUserName(userId)
		if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
			name = strings.TrimSpace(*req.Name)
		}
		user = &entity.User{
			Id:        userId,
			Name:      name,
			Pronouns:  req.Pronouns,
			Bio:       req.Bio,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
			user.Name = strings.TrimSpace(*req.Name)
		}
		if req.Pronouns != nil {
			user.Pronouns = req.Pronouns
		}
		if req.Bio != nil {
			user.Bio = req.Bio
		}
		user.UpdatedAt = time.Now()
		if err := repo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return toUserResponse(user), nil
}

func (s *userService) GetProfile(ctx context.Context, userId string) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Pronouns:  user.Pronouns,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}
}
