package memory

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"
)

type broadcastRepository struct {
	store *Store
}

func (r *broadcastRepository) Create(ctx context.Context, record *entity.BroadcastRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *record
	r.store.broadcasts = append(r.store.broadcasts, &clone)
	return nil
}

func (r *broadcastRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BroadcastRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]*entity.BroadcastRecord, 0, len(r.store.broadcasts))
	for _, b := range r.store.broadcasts {
		matched := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByGroupID); ok && b.GroupId != s.GroupID {
				matched = false
				break
			}
		}
		if matched {
			clone := *b
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *broadcastRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	records, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}
