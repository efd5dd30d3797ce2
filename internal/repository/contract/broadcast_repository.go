package contract

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"
)

type BroadcastRepository interface {
	Create(ctx context.Context, record *entity.BroadcastRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BroadcastRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
