package memory

import (
	"context"

	"groupchat-be/internal/repository/contract"
	"groupchat-be/internal/repository/unitofwork"
)

type repositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork over the in-memory store. Begin/Commit/Rollback are no-ops;
// the store's mutex already serializes each operation.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) GroupRepository() contract.GroupRepository {
	return &groupRepository{store: u.store}
}

func (u *unitOfWork) TopicRepository() contract.TopicRepository {
	return &topicRepository{store: u.store}
}

func (u *unitOfWork) MessageRepository() contract.MessageRepository {
	return &messageRepository{store: u.store}
}

func (u *unitOfWork) BroadcastRepository() contract.BroadcastRepository {
	return &broadcastRepository{store: u.store}
}
