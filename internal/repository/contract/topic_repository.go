package contract

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"
)

type TopicRepository interface {
	// Create returns ErrDuplicateName when a topic with the same
	// case-folded name already exists in the group.
	Create(ctx context.Context, topic *entity.Topic) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
