package memory

import (
	"sort"
	"sync"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/specification"

	"github.com/google/uuid"
)

// Store is a process-local backing store implementing the repository
// contracts without a database. Service tests run against it; the GORM
// implementations stay the production path.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*entity.User
	groups     map[uuid.UUID]*entity.Group
	topics     map[uuid.UUID]*entity.Topic
	messages   map[uuid.UUID]*entity.Message
	broadcasts []*entity.BroadcastRecord
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*entity.User),
		groups:   make(map[uuid.UUID]*entity.Group),
		topics:   make(map[uuid.UUID]*entity.Topic),
		messages: make(map[uuid.UUID]*entity.Message),
	}
}

// orderAndLimit applies OrderBy/Limit specs to an already filtered slice.
// Only created_at ordering is meaningful for this model.
func orderAndLimit[T any](items []T, createdAt func(T) int64, specs []specification.Specification) []T {
	limit := 0
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			desc := s.Desc
			sort.SliceStable(items, func(i, j int) bool {
				if desc {
					return createdAt(items[i]) > createdAt(items[j])
				}
				return createdAt(items[i]) < createdAt(items[j])
			})
		case specification.Limit:
			limit = s.N
		}
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
