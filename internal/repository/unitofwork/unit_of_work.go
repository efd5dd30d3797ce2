package unitofwork

import (
	"context"

	"groupchat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	GroupRepository() contract.GroupRepository
	TopicRepository() contract.TopicRepository
	MessageRepository() contract.MessageRepository
	BroadcastRepository() contract.BroadcastRepository
}
