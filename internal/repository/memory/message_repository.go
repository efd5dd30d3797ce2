package memory

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type messageRepository struct {
	store *Store
}

func (r *messageRepository) matches(m *entity.Message, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.ByGroupID:
			if m.GroupId != s.GroupID {
				return false
			}
		}
	}
	return true
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message, topicIds []uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	topics := make([]entity.Topic, 0, len(topicIds))
	for _, id := range topicIds {
		if t, ok := r.store.topics[id]; ok {
			topics = append(topics, *t)
		}
	}
	message.Topics = topics
	if author, ok := r.store.users[message.UserId]; ok {
		clone := *author
		message.Author = &clone
	}

	stored := *message
	r.store.messages[message.Id] = &stored
	return nil
}

func cloneMessage(m *entity.Message) *entity.Message {
	clone := *m
	clone.Topics = append([]entity.Topic(nil), m.Topics...)
	if m.Author != nil {
		author := *m.Author
		clone.Author = &author
	}
	return &clone
}

func (r *messageRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, m := range r.store.messages {
		if r.matches(m, specs) {
			return cloneMessage(m), nil
		}
	}
	return nil, nil
}

func (r *messageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]*entity.Message, 0)
	for _, m := range r.store.messages {
		if r.matches(m, specs) {
			result = append(result, cloneMessage(m))
		}
	}
	result = orderAndLimit(result, func(m *entity.Message) int64 { return m.CreatedAt.UnixNano() }, specs)
	return result, nil
}

func (r *messageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	messages, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(messages)), nil
}
