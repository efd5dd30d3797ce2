package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"groupchat-be/internal/entity"
	"groupchat-be/internal/model"
	"groupchat-be/internal/repository/contract"
	"groupchat-be/internal/repository/specification"
	"groupchat-be/internal/repository/unitofwork"
	"groupchat-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the GORM wiring against a real Postgres. Skipped unless
// DB_CONNECTION_STRING is set; run cmd/migrate first.
func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TopicRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()

	group := &entity.Group{Id: uuid.New(), Name: "integration-" + uuid.NewString(), OwnerId: "it-owner"}
	require.NoError(t, uow.GroupRepository().Create(ctx, group))
	defer gormDB.Delete(&model.Group{}, "id = ?", group.Id)

	t.Run("Topic unique index is case-insensitive", func(t *testing.T) {
		topic := &entity.Topic{Id: uuid.New(), Name: "Budget", Color: "#FFFFFF", GroupId: group.Id}
		require.NoError(t, uow.TopicRepository().Create(ctx, topic))
		defer gormDB.Delete(&model.Topic{}, "id = ?", topic.Id)

		dup := &entity.Topic{Id: uuid.New(), Name: "bUdGeT", Color: "#FFFFFF", GroupId: group.Id}
		err := uow.TopicRepository().Create(ctx, dup)
		assert.ErrorIs(t, err, contract.ErrDuplicateName)

		found, err := uow.TopicRepository().FindOne(ctx,
			specification.ByGroupID{GroupID: group.Id},
			specification.ByNameFold{Name: "BUDGET"},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, topic.Id, found.Id)
	})

	t.Run("Message roundtrip with topic links", func(t *testing.T) {
		user := &entity.User{Id: "it-user-" + uuid.NewString(), Name: "Integration"}
		require.NoError(t, uow.UserRepository().Create(ctx, user))
		defer gormDB.Delete(&model.User{}, "id = ?", user.Id)

		topic := &entity.Topic{Id: uuid.New(), Name: "roundtrip", Color: "#FFFFFF", GroupId: group.Id}
		require.NoError(t, uow.TopicRepository().Create(ctx, topic))
		defer gormDB.Delete(&model.Topic{}, "id = ?", topic.Id)

		message := &entity.Message{
			Id:      uuid.New(),
			Content: "integration message",
			UserId:  user.Id,
			GroupId: group.Id,
		}
		require.NoError(t, uow.MessageRepository().Create(ctx, message, []uuid.UUID{topic.Id}))
		defer func() {
			gormDB.Delete(&model.MessageTopic{}, "message_id = ?", message.Id)
			gormDB.Delete(&model.Message{}, "id = ?", message.Id)
		}()

		// Create reloads relations.
		require.NotNil(t, message.Author)
		assert.Equal(t, user.Name, message.Author.Name)
		require.Len(t, message.Topics, 1)
		assert.Equal(t, topic.Id, message.Topics[0].Id)

		listed, err := uow.MessageRepository().FindAll(ctx,
			specification.ByGroupID{GroupID: group.Id},
			specification.OrderBy{Field: "created_at"},
		)
		require.NoError(t, err)
		require.NotEmpty(t, listed)
		assert.True(t, listed[len(listed)-1].HasTopic(topic.Id))
	})
}
