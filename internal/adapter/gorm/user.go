package gorm

import (
	"strings"
	"time"

	"github.com/praxishq/praxis/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Email        string `gorm:"unique"`
	DisplayName  string
	PasswordHash string

	// Comma-separated role list, parsed on read.
	Roles string

	Active bool
}

type wrappedUser struct {
	u *User
}

// ID implements [model.User].
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Email implements [model.User].
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// DisplayName implements [model.User].
func (w *wrappedUser) DisplayName() string {
	return w.u.DisplayName
}

// Roles implements [model.User].
func (w *wrappedUser) Roles() []string {
	if w.u.Roles == "" {
		return nil
	}

	return strings.Split(w.u.Roles, ",")
}

// Active implements [model.User].
func (w *wrappedUser) Active() bool {
	return w.u.Active
}

var _ model.User = &wrappedUser{}
