package mapper

import (
	"groupchat-be/internal/entity"
	"groupchat-be/internal/model"
)

type MessageMapper struct {
	userMapper  *UserMapper
	topicMapper *TopicMapper
}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{
		userMapper:  NewUserMapper(),
		topicMapper: NewTopicMapper(),
	}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	topics := make([]entity.Topic, len(msg.Topics))
	for i := range msg.Topics {
		topics[i] = *m.topicMapper.ToEntity(&msg.Topics[i])
	}
	e := &entity.Message{
		Id:        msg.Id,
		Content:   msg.Content,
		UserId:    msg.UserId,
		GroupId:   msg.GroupId,
		CreatedAt: msg.CreatedAt,
		Topics:    topics,
	}
	if msg.User.Id != "" {
		e.Author = m.userMapper.ToEntity(&msg.User)
	}
	return e
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		Content:   msg.Content,
		UserId:    msg.UserId,
		GroupId:   msg.GroupId,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
