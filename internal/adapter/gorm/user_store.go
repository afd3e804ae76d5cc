package gorm

import (
	"context"
	"strings"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"gorm.io/gorm"
)

// CreateUser implements port.UserStore.
func (s *Store) CreateUser(ctx context.Context, params port.CreateUserParams) (model.User, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("email = ?", params.Email).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}

		if count > 0 {
			return errors.WithStack(port.ErrEmailTaken)
		}

		user = User{
			ID:           string(model.NewUserID()),
			Email:        params.Email,
			DisplayName:  params.DisplayName,
			PasswordHash: params.PasswordHash,
			Roles:        strings.Join(params.Roles, ","),
			Active:       true,
		}

		if err := tx.Create(&user).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		// The unique index wins over the pre-check under concurrent writes.
		var sqliteErr *sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.CONSTRAINT {
			return nil, errors.WithStack(port.ErrEmailTaken)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// FindUserByEmail implements port.UserStore.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// GetPasswordHash implements port.UserStore.
func (s *Store) GetPasswordHash(ctx context.Context, userID model.UserID) (string, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Select("password_hash").First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return user.PasswordHash, nil
}

var _ port.UserStore = &Store{}
