package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
)

// UserStore decorates a port.UserStore with an expiring LRU keyed by both
// user ID and email. The authn middleware resolves the session user on every
// request, this keeps those lookups off the database.
type UserStore struct {
	backend port.UserStore

	byID    *expirable.LRU[model.UserID, model.User]
	byEmail *expirable.LRU[string, model.User]
}

func NewUserStore(backend port.UserStore, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend: backend,
		byID:    expirable.NewLRU[model.UserID, model.User](size, nil, ttl),
		byEmail: expirable.NewLRU[string, model.User](size, nil, ttl),
	}
}

// CreateUser implements [port.UserStore].
func (s *UserStore) CreateUser(ctx context.Context, params port.CreateUserParams) (model.User, error) {
	user, err := s.backend.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}

	s.add(user)

	return user, nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	if user, exists := s.byID.Get(userID); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.add(user)

	return user, nil
}

// FindUserByEmail implements [port.UserStore].
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	if user, exists := s.byEmail.Get(email); exists {
		return user, nil
	}

	user, err := s.backend.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.add(user)

	return user, nil
}

// GetPasswordHash implements [port.UserStore].
//
// Credentials are never cached.
func (s *UserStore) GetPasswordHash(ctx context.Context, userID model.UserID) (string, error) {
	return s.backend.GetPasswordHash(ctx, userID)
}

func (s *UserStore) add(user model.User) {
	s.byID.Add(user.ID(), user)
	s.byEmail.Add(user.Email(), user)
}

var _ port.UserStore = &UserStore{}
