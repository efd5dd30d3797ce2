package memory

import (
	"context"
	"fmt"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) matches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if u.Id != s.UserID {
				return false
			}
		case specification.ByEmail:
			if u.Email == nil || *u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.users[user.Id]; exists {
		return fmt.Errorf("user %s already exists", user.Id)
	}
	clone := *user
	r.store.users[user.Id] = &clone
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *user
	r.store.users[user.Id] = &clone
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if r.matches(u, specs) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]*entity.User, 0)
	for _, u := range r.store.users {
		if r.matches(u, specs) {
			clone := *u
			result = append(result, &clone)
		}
	}
	result = orderAndLimit(result, func(u *entity.User) int64 { return u.CreatedAt.UnixNano() }, specs)
	return result, nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}
