package model

import (
	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User interface {
	WithID[UserID]

	Email() string
	DisplayName() string
	Roles() []string
	Active() bool
}

type BaseUser struct {
	id          UserID
	email       string
	displayName string
	roles       []string
	active      bool
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// DisplayName implements User.
func (u *BaseUser) DisplayName() string {
	return u.displayName
}

// Roles implements User.
func (u *BaseUser) Roles() []string {
	return u.roles
}

// Active implements User.
func (u *BaseUser) Active() bool {
	return u.active
}

var _ User = &BaseUser{}

func NewUser(id UserID, email, displayName string, roles ...string) *BaseUser {
	return &BaseUser{
		id:          id,
		email:       email,
		displayName: displayName,
		roles:       roles,
		active:      true,
	}
}
