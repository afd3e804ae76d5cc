package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

type CreateUserParams struct {
	Email        string
	DisplayName  string
	PasswordHash string
	Roles        []string
}

type UserStore interface {
	// CreateUser creates a new user, or returns ErrEmailTaken if the email is
	// already registered
	CreateUser(ctx context.Context, params CreateUserParams) (model.User, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound if not found
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)

	// FindUserByEmail searches for a user by its unique email, or returns
	// ErrNotFound if not found
	FindUserByEmail(ctx context.Context, email string) (model.User, error)

	// GetPasswordHash returns the stored password hash of a user
	GetPasswordHash(ctx context.Context, userID model.UserID) (string, error)
}
