package memory

import (
	"context"
	"strings"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/contract"
	"groupchat-be/internal/repository/specification"
)

type topicRepository struct {
	store *Store
}

func (r *topicRepository) matches(t *entity.Topic, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if t.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if t.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.ByGroupID:
			if t.GroupId != s.GroupID {
				return false
			}
		case specification.ByNameFold:
			if !strings.EqualFold(t.Name, s.Name) {
				return false
			}
		}
	}
	return true
}

func (r *topicRepository) Create(ctx context.Context, topic *entity.Topic) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	// Mirror the storage-level unique index on (group_id, name_key).
	for _, existing := range r.store.topics {
		if existing.GroupId == topic.GroupId && strings.EqualFold(existing.Name, topic.Name) {
			return contract.ErrDuplicateName
		}
	}
	clone := *topic
	r.store.topics[topic.Id] = &clone
	return nil
}

func (r *topicRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, t := range r.store.topics {
		if r.matches(t, specs) {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *topicRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]*entity.Topic, 0)
	for _, t := range r.store.topics {
		if r.matches(t, specs) {
			clone := *t
			result = append(result, &clone)
		}
	}
	result = orderAndLimit(result, func(t *entity.Topic) int64 { return t.CreatedAt.UnixNano() }, specs)
	return result, nil
}

func (r *topicRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	topics, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(topics)), nil
}
