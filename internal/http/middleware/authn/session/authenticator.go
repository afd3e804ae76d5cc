package session

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"github.com/praxishq/praxis/internal/http/middleware/authn"
)

// Authenticate implements [authn.Authenticator].
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error) {
	userID, err := h.retrieveSessionUserID(r)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	user, err := h.userStore.GetUserByID(r.Context(), userID)
	if err != nil {
		// A session pointing at a deleted account is an anonymous request,
		// not a server failure.
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

var _ authn.Authenticator = &Handler{}
