package service

import (
	"context"
	"time"

	"groupchat-be/internal/config"
	"groupchat-be/internal/entity"
	"groupchat-be/internal/repository/memory"
	"groupchat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Shared fixtures for the service tests. Everything runs against the
// in-memory repositories.

type publishedEvent struct {
	EventType string
	GroupId   uuid.UUID
	Data      interface{}
}

// recordingPublisher captures PublishCreated calls instead of touching the
// bus.
type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) PublishCreated(ctx context.Context, eventType string, groupId uuid.UUID, data interface{}) {
	p.events = append(p.events, publishedEvent{EventType: eventType, GroupId: groupId, Data: data})
}

func testConfig() *config.Config {
	return &config.Config{
		Chat: config.ChatConfig{
			DefaultGroupName:  "General",
			TopicResolution:   config.TopicResolutionLenient,
			DefaultTopicColor: "#FFFFFF",
			RecentWindowLimit: 50,
		},
	}
}

type fixture struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *recordingPublisher
	topicCache *cache.Cache
	cfg        *config.Config
}

func newFixture() *fixture {
	return &fixture{
		uowFactory: memory.NewRepositoryFactory(memory.NewStore()),
		publisher:  &recordingPublisher{},
		topicCache: cache.New(time.Minute, time.Minute),
		cfg:        testConfig(),
	}
}

func (f *fixture) seedGroup(name string) *entity.Group {
	group := &entity.Group{
		Id:        uuid.New(),
		Name:      name,
		OwnerId:   "owner-1",
		CreatedAt: time.Now(),
	}
	uow := f.uowFactory.NewUnitOfWork(context.Background())
	if err := uow.GroupRepository().Create(context.Background(), group); err != nil {
		panic(err)
	}
	return group
}

func (f *fixture) seedTopic(groupId uuid.UUID, name string) *entity.Topic {
	topic := &entity.Topic{
		Id:        uuid.New(),
		Name:      name,
		Color:     "#FFFFFF",
		GroupId:   groupId,
		CreatedAt: time.Now(),
	}
	uow := f.uowFactory.NewUnitOfWork(context.Background())
	if err := uow.TopicRepository().Create(context.Background(), topic); err != nil {
		panic(err)
	}
	return topic
}

func (f *fixture) seedUser(id, name string) *entity.User {
	user := &entity.User{
		Id:        id,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	uow := f.uowFactory.NewUnitOfWork(context.Background())
	if err := uow.UserRepository().Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user
}

func (f *fixture) topicService() ITopicService {
	return NewTopicService(f.uowFactory, f.publisher, f.topicCache, f.cfg)
}

func (f *fixture) messageService() IMessageService {
	return NewMessageService(f.uowFactory, f.publisher, f.topicCache, f.cfg)
}

func (f *fixture) userService() IUserService {
	return NewUserService(f.uowFactory)
}
