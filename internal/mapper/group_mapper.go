package mapper

import (
	"groupchat-be/internal/entity"
	"groupchat-be/internal/model"
)

type GroupMapper struct{}

func NewGroupMapper() *GroupMapper {
	return &GroupMapper{}
}

func (m *GroupMapper) ToEntity(g *model.Group) *entity.Group {
	if g == nil {
		return nil
	}
	return &entity.Group{
		Id:        g.Id,
		Name:      g.Name,
		OwnerId:   g.OwnerId,
		CreatedAt: g.CreatedAt,
	}
}

func (m *GroupMapper) ToModel(g *entity.Group) *model.Group {
	if g == nil {
		return nil
	}
	return &model.Group{
		Id:        g.Id,
		Name:      g.Name,
		OwnerId:   g.OwnerId,
		CreatedAt: g.CreatedAt,
	}
}

func (m *GroupMapper) ToEntities(groups []*model.Group) []*entity.Group {
	entities := make([]*entity.Group, len(groups))
	for i, g := range groups {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
