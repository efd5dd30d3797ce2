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

	"github.com/google/uuid"
)

type IGroupService interface {
	Create(ctx context.Context, userId string, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetAll(ctx context.Context) ([]*dto.GroupResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, error)
}

type groupService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGroupService(uowFactory unitofwork.RepositoryFactory) IGroupService {
	return &groupService{
		uowFactory: uowFactory,
	}
}

func (s *groupService) Create(ctx context.Context, userId string, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, serverutils.NewValidationError("Group name is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	group := &entity.Group{
		Id:        uuid.New(),
		Name:      name,
		OwnerId:   userId,
		CreatedAt: time.Now(),
	}

	if err := uow.GroupRepository().Create(ctx, group); err != nil {
		return nil, err
	}

	return toGroupResponse(group), nil
}

func (s *groupService) GetAll(ctx context.Context) ([]*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	groups, err := uow.GroupRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupResponse, len(groups))
	for i, g := range groups {
		result[i] = toGroupResponse(g)
	}
	return result, nil
}

func (s *groupService) Show(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, serverutils.NewNotFoundError("Group not found")
	}
	return toGroupResponse(group), nil
}

func toGroupResponse(group *entity.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		Id:        group.Id,
		Name:      group.Name,
		OwnerId:   group.OwnerId,
		CreatedAt: group.CreatedAt,
	}
}
