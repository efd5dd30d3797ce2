package contract

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	// Create persists the message and one join row per topic id, atomically,
	// then reloads the message with its author and topic set expanded.
	Create(ctx context.Context, message *entity.Message, topicIds []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
