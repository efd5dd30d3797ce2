package memory

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"
)

type groupRepository struct {
	store *Store
}

func (r *groupRepository) matches(g *entity.Group, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if g.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if g.OwnerId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *group
	r.store.groups[group.Id] = &clone
	return nil
}

func (r *groupRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, g := range r.store.groups {
		if r.matches(g, specs) {
			clone := *g
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *groupRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]*entity.Group, 0)
	for _, g := range r.store.groups {
		if r.matches(g, specs) {
			clone := *g
			result = append(result, &clone)
		}
	}
	result = orderAndLimit(result, func(g *entity.Group) int64 { return g.CreatedAt.UnixNano() }, specs)
	return result, nil
}

func (r *groupRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	groups, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(groups)), nil
}
