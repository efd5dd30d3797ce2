package service

import (
	"context"
	"errors"
	"testing"

	"groupchat-be/internal/config"
	"groupchat-be/internal/dto"
	"groupchat-be/internal/pkg/serverutils"
	"groupchat-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCreate(t *testing.T) {
	f := newFixture()
	group := f.seedGroup("General")
	topic := f.seedTopic(group.Id, "planning")
	f.seedUser("author-1", "Ada")
	svc := f.messageService()

	res, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{
		Content:  "kickoff at noon",
		TopicIds: []uuid.UUID{topic.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, "kickoff at noon", res.Content)
	assert.Equal(t, "author-1", res.Author.Id)
	assert.Equal(t, "Ada", res.Author.Name)
	require.Len(t, res.Topics, 1)
	assert.Equal(t, topic.Id, res.Topics[0].Id)
	assert.Equal(t, "planning", res.Topics[0].Name)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.TypeMessageCreated, f.publisher.events[0].EventType)
	assert.Equal(t, group.Id, f.publisher.events[0].GroupId)
}

func TestMessageCreateRejectsBlankContent(t *testing.T) {
	f := newFixture()
	group := f.seedGroup("General")
	svc := f.messageService()

	_, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{Content: "  \n "})

	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, serverutils.KindValidation, appErr.Kind)
}

func TestMessageCreateUnknownAuthorGetsDefaultName(t *testing.T) {
	f := newFixture()
	group := f.seedGroup("General")
	svc := f.messageService()

	res, err := svc.Create(context.Background(), group.Id, "stranger-xyz", &dto.CreateMessageRequest{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "stranger-xyz", res.Author.Id)
	assert.Equal(t, "User-strang", res.Author.Name)
}

func TestMessageCreateLenientDropsUnknownTopics(t *testing.T) {
	f := newFixture()
	group := f.seedGroup("General")
	topic := f.seedTopic(group.Id, "real")
	otherGroup := f.seedGroup("Other")
	foreign := f.seedTopic(otherGroup.Id, "foreign")
	svc := f.messageService()

	res, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{
		Content:  "mixed tags",
		TopicIds: []uuid.UUID{topic.Id, uuid.New(), foreign.Id},
	})
	require.NoError(t, err)

	// Only the topic belonging to this group survives. The message itself
	// is never rejected in lenient mode.
	require.Len(t, res.Topics, 1)
	assert.Equal(t, topic.Id, res.Topics[0].Id)
}

func TestMessageCreateStrictRejectsUnknownTopics(t *testing.T) {
	f := newFixture()
	f.cfg.Chat.TopicResolution = config.TopicResolutionStrict
	group := f.seedGroup("General")
	topic := f.seedTopic(group.Id, "real")
	svc := f.messageService()

	_, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{
		Content:  "mixed tags",
		TopicIds: []uuid.UUID{topic.Id, uuid.New()},
	})

	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
	assert.Empty(t, f.publisher.events)
}

func TestMessageCreateDeduplicatesTopicIds(t *testing.T) {
	f := newFixture()
	group := f.seedGroup("General")
	topic := f.seedTopic(group.Id, "once")
	svc := f.messageService()

	res, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{
		Content:  "double tagged",
		TopicIds: []uuid.UUID{topic.Id, topic.Id},
	})
	require.NoError(t, err)
	assert.Len(t, res.Topics, 1)
}

func TestMessageListOrdering(t *testing.T) {
	f := newFixture()
	group := f.seedGroup("General")
	svc := f.messageService()

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{Content: content})
		require.NoError(t, err)
	}

	t.Run("default ascending", func(t *testing.T) {
		res, err := svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{})
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, "first", res[0].Content)
		assert.Equal(t, "third", res[2].Content)
	})

	t.Run("descending", func(t *testing.T) {
		res, err := svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{Order: "desc"})
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, "third", res[0].Content)
		assert.Equal(t, "first", res[2].Content)
	})

	t.Run("descending with limit", func(t *testing.T) {
		res, err := svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{Order: "desc", Limit: 2})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "third", res[0].Content)
		assert.Equal(t, "second", res[1].Content)
	})

	t.Run("invalid order", func(t *testing.T) {
		_, err := svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{Order: "sideways"})
		var appErr *serverutils.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, serverutils.KindValidation, appErr.Kind)
	})
}

func TestMessageListRecentWindowCap(t *testing.T) {
	f := newFixture()
	f.cfg.Chat.RecentWindowLimit = 5
	group := f.seedGroup("General")
	svc := f.messageService()

	for i := 0; i < 8; i++ {
		_, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{Content: "msg"})
		require.NoError(t, err)
	}

	// Descending with no explicit limit falls back to the recent window.
	res, err := svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{Order: "desc"})
	require.NoError(t, err)
	assert.Len(t, res, 5)

	// Ascending stays uncapped.
	res, err = svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{})
	require.NoError(t, err)
	assert.Len(t, res, 8)
}

func TestMessageListTopicsFilter(t *testing.T) {
	f := newFixture()
	group := f.seedGroup("General")
	topicA := f.seedTopic(group.Id, "alpha")
	topicB := f.seedTopic(group.Id, "beta")
	svc := f.messageService()

	_, err := svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{
		Content: "tagged alpha", TopicIds: []uuid.UUID{topicA.Id},
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{
		Content: "tagged both", TopicIds: []uuid.UUID{topicA.Id, topicB.Id},
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), group.Id, "author-1", &dto.CreateMessageRequest{
		Content: "untagged",
	})
	require.NoError(t, err)

	res, err := svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{
		Topics: []uuid.UUID{topicB.Id},
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "tagged both", res[0].Content)

	res, err = svc.List(context.Background(), group.Id, &dto.ListMessagesQuery{
		Topics: []uuid.UUID{topicA.Id, topicB.Id},
	})
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestMessageListUnknownGroup(t *testing.T) {
	f := newFixture()
	svc := f.messageService()

	_, err := svc.List(context.Background(), uuid.New(), &dto.ListMessagesQuery{})

	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
}
