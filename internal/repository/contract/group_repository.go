package contract

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"
)

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
