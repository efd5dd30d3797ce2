package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"groupchat-be/internal/config"
	"groupchat-be/internal/dto"
	"groupchat-be/internal/entity"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/repository/contract"
	"groupchat-be/internal/repository/specification"
	"groupchat-be/internal/repository/unitofwork"
	"groupchat-be/pkg/events"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ITopicService interface {
	Create(ctx context.Context, groupId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	GetAll(ctx context.Context, groupId uuid.UUID) ([]*dto.TopicResponse, error)
}

type topicService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	topicCache       *cache.Cache
	cfg              *config.Config
}

func NewTopicService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	topicCache *cache.Cache,
	cfg *config.Config,
) ITopicService {
	return &topicService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		topicCache:       topicCache,
		cfg:              cfg,
	}
}

func topicCacheKey(groupId uuid.UUID) string {
	return "topics:" + groupId.String()
}

// Create provisions a topic in the group. Duplicate detection is left
// entirely to the storage unique index so concurrent creators cannot slip
// past a lookup; a name that case-insensitively matches an existing topic
// yields a Conflict carrying the existing record.
func (s *topicService) Create(ctx context.Context, groupId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, serverutils.NewValidationError("Topic name is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, serverutils.NewNotFoundError("Group not found")
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = s.cfg.Chat.DefaultTopicColor
	}

	topic := &entity.Topic{
		Id:        uuid.New(),
		Name:      name,
		Color:     color,
		GroupId:   groupId,
		CreatedAt: time.Now(),
	}

	if err := uow.TopicRepository().Create(ctx, topic); err != nil {
		if errors.Is(err, contract.ErrDuplicateName) {
			existing, findErr := uow.TopicRepository().FindOne(ctx,
				specification.ByGroupID{GroupID: groupId},
				specification.ByNameFold{Name: name},
			)
			if findErr != nil {
				return nil, findErr
			}
			var data *dto.TopicResponse
			if existing != nil {
				data = toTopicResponse(existing)
			}
			return nil, serverutils.NewConflictError("Topic already exists", data)
		}
		return nil, err
	}

	s.topicCache.Delete(topicCacheKey(groupId))

	res := toTopicResponse(topic)
	s.publisherService.PublishCreated(ctx, events.TypeTopicCreated, groupId, res)
	return res, nil
}

func (s *topicService) GetAll(ctx context.Context, groupId uuid.UUID) ([]*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, serverutils.NewNotFoundError("Group not found")
	}

	topics, err := uow.TopicRepository().FindAll(ctx,
		specification.ByGroupID{GroupID: groupId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TopicResponse, len(topics))
	for i, t := range topics {
		result[i] = toTopicResponse(t)
	}
	return result, nil
}

func toTopicResponse(topic *entity.Topic) *dto.TopicResponse {
	return &dto.TopicResponse{
		Id:      topic.Id,
		Name:    topic.Name,
		Color:   topic.Color,
		GroupId: topic.GroupId,
	}
}
