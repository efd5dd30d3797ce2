package feed

import (
	"testing"
	"time"

	"groupchat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeMessage(content string, createdAt time.Time, topicIds ...uuid.UUID) *entity.Message {
	topics := make([]entity.Topic, len(topicIds))
	for i, id := range topicIds {
		topics[i] = entity.Topic{Id: id}
	}
	return &entity.Message{
		Id:        uuid.New(),
		Content:   content,
		CreatedAt: createdAt,
		Topics:    topics,
	}
}

func TestFilter(t *testing.T) {
	topicA := uuid.New()
	topicB := uuid.New()
	topicC := uuid.New()

	base := time.Now()
	m1 := makeMessage("tagged a", base, topicA)
	m2 := makeMessage("tagged a and b", base.Add(time.Second), topicA, topicB)
	m3 := makeMessage("untagged", base.Add(2*time.Second))
	m4 := makeMessage("tagged c", base.Add(3*time.Second), topicC)
	messages := []*entity.Message{m1, m2, m3, m4}

	tests := []struct {
		name     string
		selected []uuid.UUID
		want     []*entity.Message
	}{
		{
			name:     "empty selection returns everything",
			selected: nil,
			want:     []*entity.Message{m1, m2, m3, m4},
		},
		{
			name:     "single topic",
			selected: []uuid.UUID{topicB},
			want:     []*entity.Message{m2},
		},
		{
			name:     "any match across topics",
			selected: []uuid.UUID{topicA, topicC},
			want:     []*entity.Message{m1, m2, m4},
		},
		{
			name:     "message with several selected topics appears once",
			selected: []uuid.UUID{topicA, topicB},
			want:     []*entity.Message{m1, m2},
		},
		{
			name:     "unknown topic matches nothing",
			selected: []uuid.UUID{uuid.New()},
			want:     []*entity.Message{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(messages, tt.selected)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	topicA := uuid.New()
	m1 := makeMessage("first", time.Now(), topicA)
	m2 := makeMessage("second", time.Now())
	messages := []*entity.Message{m1, m2}

	_ = Filter(messages, []uuid.UUID{topicA})

	assert.Equal(t, []*entity.Message{m1, m2}, messages)
}

func TestFilterIsIdempotent(t *testing.T) {
	topicA := uuid.New()
	messages := []*entity.Message{
		makeMessage("one", time.Now(), topicA),
		makeMessage("two", time.Now()),
		makeMessage("three", time.Now(), topicA),
	}
	selected := []uuid.UUID{topicA}

	once := Filter(messages, selected)
	twice := Filter(once, selected)

	assert.Equal(t, once, twice)
}

func TestFilterEmptySelectionReturnsCopy(t *testing.T) {
	messages := []*entity.Message{
		makeMessage("one", time.Now()),
		makeMessage("two", time.Now()),
	}

	got := Filter(messages, nil)
	assert.Equal(t, messages, got)

	// The returned slice is detached from the input backing array.
	got[0] = makeMessage("replaced", time.Now())
	assert.Equal(t, "one", messages[0].Content)
}

func TestSortByCreatedAt(t *testing.T) {
	base := time.Now()
	m1 := makeMessage("oldest", base)
	m2 := makeMessage("middle", base.Add(time.Second))
	m3 := makeMessage("newest", base.Add(2*time.Second))
	shuffled := []*entity.Message{m2, m3, m1}

	asc := SortByCreatedAt(shuffled, false)
	assert.Equal(t, []*entity.Message{m1, m2, m3}, asc)

	desc := SortByCreatedAt(shuffled, true)
	assert.Equal(t, []*entity.Message{m3, m2, m1}, desc)

	// Input order survives both calls.
	assert.Equal(t, []*entity.Message{m2, m3, m1}, shuffled)
}

func TestSortByCreatedAtStableOnTies(t *testing.T) {
	base := time.Now()
	m1 := makeMessage("first", base)
	m2 := makeMessage("second", base)
	m3 := makeMessage("third", base)

	got := SortByCreatedAt([]*entity.Message{m1, m2, m3}, false)
	assert.Equal(t, []*entity.Message{m1, m2, m3}, got)
}
