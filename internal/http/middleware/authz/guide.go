package authz

import (
	"slices"

	"github.com/praxishq/praxis/internal/core/model"
)

// CanViewGuide resolves guide visibility from the reader's roles. A guide
// with no role restriction is visible to every authenticated user.
func CanViewGuide(user model.User, guide *model.Guide) bool {
	if user == nil {
		return false
	}

	if len(guide.Roles) == 0 {
		return true
	}

	for _, role := range guide.Roles {
		if slices.Contains(user.Roles(), role) {
			return true
		}
	}

	return false
}
