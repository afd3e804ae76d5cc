package session

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
)

const sessionKeyUserID = "userID"

var errSessionNotFound = errors.New("session not found")

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, userID model.UserID) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session, overwrite it.
		sess, err = h.sessionStore.New(r, h.sessionName)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	sess.Values[sessionKeyUserID] = string(userID)

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUserID(r *http.Request) (model.UserID, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return "", errors.WithStack(errSessionNotFound)
	}

	raw, ok := sess.Values[sessionKeyUserID].(string)
	if !ok || raw == "" {
		return "", errors.WithStack(errSessionNotFound)
	}

	return model.UserID(raw), nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(errSessionNotFound)
	}

	delete(sess.Values, sessionKeyUserID)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
