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

type TopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TopicMapper
}

func NewTopicRepository(db *gorm.DB) contract.TopicRepository {
	return &TopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewTopicMapper(),
	}
}

func (r *TopicRepositoryImpl) Create(ctx context.Context, topic *entity.Topic) error {
	m := r.mapper.ToModel(topic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// Relies on gorm.Config.TranslateError mapping the unique
		// violation on idx_topics_group_name_key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return contract.ErrDuplicateName
		}
		return err
	}
	*topic = *r.mapper.ToEntity(m)
	return nil
}

func (r *TopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error) {
	var m model.Topic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error) {
	var models []*model.Topic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Topic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
