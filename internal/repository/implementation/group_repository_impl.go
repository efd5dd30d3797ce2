package implementation

import (
	"context"
	"errors"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/mapper"
	"groupchat-be/internal/model"
	"groupchat-be/internal/repository/contract"
	"groupchat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GroupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GroupMapper
}

func NewGroupRepository(db *gorm.DB) contract.GroupRepository {
	return &GroupRepositoryImpl{
		db:     db,
		mapper: mapper.NewGroupMapper(),
	}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *entity.Group) error {
	m := r.mapper.ToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.ToEntity(m)
	return nil
}

func (r *GroupRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error) {
	var m model.Group
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GroupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error) {
	var models []*model.Group
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GroupRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Group{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
