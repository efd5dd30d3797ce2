package mapper

import (
	"strings"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/model"
)

type TopicMapper struct{}

func NewTopicMapper() *TopicMapper {
	return &TopicMapper{}
}

func (m *TopicMapper) ToEntity(t *model.Topic) *entity.Topic {
	if t == nil {
		return nil
	}
	return &entity.Topic{
		Id:        t.Id,
		Name:      t.Name,
		Color:     t.Color,
		GroupId:   t.GroupId,
		CreatedAt: t.CreatedAt,
	}
}

// ToModel derives NameKey from the display name; the model never trusts a
// caller-supplied key.
func (m *TopicMapper) ToModel(t *entity.Topic) *model.Topic {
	if t == nil {
		return nil
	}
	return &model.Topic{
		Id:        t.Id,
		Name:      t.Name,
		NameKey:   strings.ToLower(t.Name),
		Color:     t.Color,
		GroupId:   t.GroupId,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TopicMapper) ToEntities(topics []*model.Topic) []*entity.Topic {
	entities := make([]*entity.Topic, len(topics))
	for i, t := range topics {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
