package service

import (
	"context"
	"strings"
	"time"

	"groupchat-be/internal/config"
	"groupchat-be/internal/dto"
	"groupchat-be/internal/entity"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/internal/repository/specification"
	"groupchat-be/internal/repository/unitofwork"
	"groupchat-be/pkg/events"
	"groupchat-be/pkg/feed"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IMessageService interface {
	Create(ctx context.Context, groupId uuid.UUID, authorId string, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	List(ctx context.Context, groupId uuid.UUID, query *dto.ListMessagesQuery) ([]*dto.MessageResponse, error)
}

type messageService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	topicCache       *cache.Cache
	cfg              *config.Config
}

func NewMessageService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	topicCache *cache.Cache,
	cfg *config.Config,
) IMessageService {
	return &messageService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		topicCache:       topicCache,
		cfg:              cfg,
	}
}

// Create stores the message with its topic links. Topic ids that do not
// resolve within the group are silently dropped in lenient mode; strict
// mode rejects the message instead. A stale client topic cache must not
// make a send fail, hence the lenient default.
func (s *messageService) Create(ctx context.Context, groupId uuid.UUID, authorId string, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, serverutils.NewValidationError("Message content is required")
	}
	if authorId == "" {
		return nil, serverutils.NewUnauthenticatedError("Author identity is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, serverutils.NewNotFoundError("Group not found")
	}

	// Author is upserted on demand: the identity provider already vouched
	// for the id, a missing row just means first activity.
	author, err := uow.UserRepository().FindOne(ctx, specification.ByUserID{UserID: authorId})
	if err != nil {
		return nil, err
	}
	if author == nil {
		author = &entity.User{
			Id:        authorId,
			Name:      DefaultUserName(authorId),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, author); err != nil {
			return nil, err
		}
	}

	resolved, dropped, err := s.resolveTopicIds(ctx, uow, groupId, req.TopicIds)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 && s.cfg.Chat.TopicResolution == config.TopicResolutionStrict {
		return nil, serverutils.NewNotFoundError("Unknown topic reference")
	}

	message := &entity.Message{
		Id:        uuid.New(),
		Content:   content,
		UserId:    authorId,
		GroupId:   groupId,
		CreatedAt: time.Now(),
	}

	if err := uow.MessageRepository().Create(ctx, message, resolved); err != nil {
		return nil, err
	}

	res := toMessageResponse(message)
	s.publisherService.PublishCreated(ctx, events.TypeMessageCreated, groupId, res)
	return res, nil
}

// resolveTopicIds splits the requested ids into those belonging to the
// group and those that don't, deduplicating on the way. Group topic sets
// are small and read-heavy, so they sit in a short-lived cache.
func (s *messageService) resolveTopicIds(ctx context.Context, uow unitofwork.UnitOfWork, groupId uuid.UUID, requested []uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	if len(requested) == 0 {
		return nil, nil, nil
	}

	known, err := s.groupTopicSet(ctx, uow, groupId)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(requested))
	resolved := make([]uuid.UUID, 0, len(requested))
	dropped := make([]uuid.UUID, 0)
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := known[id]; ok {
			resolved = append(resolved, id)
		} else {
			dropped = append(dropped, id)
		}
	}
	return resolved, dropped, nil
}

func (s *messageService) groupTopicSet(ctx context.Context, uow unitofwork.UnitOfWork, groupId uuid.UUID) (map[uuid.UUID]struct{}, error) {
	key := topicCacheKey(groupId)
	if cached, found := s.topicCache.Get(key); found {
		return cached.(map[uuid.UUID]struct{}), nil
	}

	topics, err := uow.TopicRepository().FindAll(ctx, specification.ByGroupID{GroupID: groupId})
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(topics))
	for _, t := range topics {
		set[t.Id] = struct{}{}
	}
	s.topicCache.Set(key, set, cache.DefaultExpiration)
	return set, nil
}

// List returns the group's feed. Order is explicit: "asc" reads like a chat
// log, "desc" is the recent window and defaults to the configured cap when
// the caller sets none. A topics selection applies the ANY-match filter.
func (s *messageService) List(ctx context.Context, groupId uuid.UUID, query *dto.ListMessagesQuery) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, serverutils.NewNotFoundError("Group not found")
	}

	desc := false
	switch query.Order {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return nil, serverutils.NewValidationError("Order must be asc or desc")
	}

	limit := query.Limit
	if limit < 0 {
		return nil, serverutils.NewValidationError("Limit must not be negative")
	}
	if desc && limit == 0 {
		limit = s.cfg.Chat.RecentWindowLimit
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByGroupID{GroupID: groupId},
		specification.OrderBy{Field: "created_at", Desc: desc},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	if len(query.Topics) > 0 {
		messages = feed.Filter(messages, query.Topics)
	}

	result := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		result[i] = toMessageResponse(m)
	}
	return result, nil
}

func toMessageResponse(message *entity.Message) *dto.MessageResponse {
	author := dto.MessageAuthor{Id: message.UserId}
	if message.Author != nil {
		author.Name = message.Author.Name
	}

	topics := make([]dto.MessageTopic, len(message.Topics))
	for i, t := range message.Topics {
		topics[i] = dto.MessageTopic{
			Id:    t.Id,
			Name:  t.Name,
			Color: t.Color,
		}
	}

	return &dto.MessageResponse{
		Id:        message.Id,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
		Author:    author,
		Topics:    topics,
	}
}
