package implementation

import (
	"context"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/mapper"
	"groupchat-be/internal/model"
	"groupchat-be/internal/repository/contract"
	"groupchat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BroadcastRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BroadcastMapper
}

func NewBroadcastRepository(db *gorm.DB) contract.BroadcastRepository {
	return &BroadcastRepositoryImpl{
		db:     db,
		mapper: mapper.NewBroadcastMapper(),
	}
}

func (r *BroadcastRepositoryImpl) Create(ctx context.Context, record *entity.BroadcastRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *BroadcastRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BroadcastRecord, error) {
	var models []*model.BroadcastRecord
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]*entity.BroadcastRecord, len(models))
	for i, m := range models {
		records[i] = r.mapper.ToEntity(m)
	}
	return records, nil
}

func (r *BroadcastRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.BroadcastRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
