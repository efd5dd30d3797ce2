package feed

import (
	"sort"

	"groupchat-be/internal/entity"

	"github.com/google/uuid"
)

// Filter returns the messages carrying at least one of the selected topic
// ids (ANY-match). An empty selection is the identity: the input list is
// returned as a copy, order untouched. The input is never mutated.
func Filter(messages []*entity.Message, selected []uuid.UUID) []*entity.Message {
	if len(selected) == 0 {
		return append([]*entity.Message(nil), messages...)
	}

	selectedSet := make(map[uuid.UUID]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	result := make([]*entity.Message, 0, len(messages))
	for _, m := range messages {
		for _, t := range m.Topics {
			if _, ok := selectedSet[t.Id]; ok {
				result = append(result, m)
				break
			}
		}
	}
	return result
}

// SortByCreatedAt returns a copy of messages ordered by creation timestamp,
// oldest first unless desc is set. Ties keep their relative order.
func SortByCreatedAt(messages []*entity.Message, desc bool) []*entity.Message {
	result := append([]*entity.Message(nil), messages...)
	sort.SliceStable(result, func(i, j int) bool {
		if desc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
