package mapper

import (
	"groupchat-be/internal/entity"
	"groupchat-be/internal/model"

	"gorm.io/datatypes"
)

type BroadcastMapper struct{}

func NewBroadcastMapper() *BroadcastMapper {
	return &BroadcastMapper{}
}

func (m *BroadcastMapper) ToEntity(r *model.BroadcastRecord) *entity.BroadcastRecord {
	if r == nil {
		return nil
	}
	return &entity.BroadcastRecord{
		Id:        r.Id,
		Subject:   r.Subject,
		GroupId:   r.GroupId,
		Payload:   []byte(r.Payload),
		CreatedAt: r.CreatedAt,
	}
}

func (m *BroadcastMapper) ToModel(r *entity.BroadcastRecord) *model.BroadcastRecord {
	if r == nil {
		return nil
	}
	return &model.BroadcastRecord{
		Id:        r.Id,
		Subject:   r.Subject,
		GroupId:   r.GroupId,
		Payload:   datatypes.JSON(r.Payload),
		CreatedAt: r.CreatedAt,
	}
}
