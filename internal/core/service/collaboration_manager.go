package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
)

var (
	// ErrNotCollaborator is returned when a user who is not the invited
	// collaborator tries to change a collaboration's status.
	ErrNotCollaborator = errors.New("not the invited collaborator")

	// ErrNoClientAccess is returned when a user asks for the shared progress
	// of a client they neither own nor have accepted access to.
	ErrNoClientAccess = errors.New("no access to client")
)

// CollaborationManager handles sharing relationships and the read-side join
// of shared workflow progress across users.
type CollaborationManager struct {
	collaborationStore port.CollaborationStore
	clientStore        port.ClientStore
	progressStore      port.ProgressStore
	userStore          port.UserStore
}

func NewCollaborationManager(collaborationStore port.CollaborationStore, clientStore port.ClientStore, progressStore port.ProgressStore, userStore port.UserStore) *CollaborationManager {
	return &CollaborationManager{
		collaborationStore: collaborationStore,
		clientStore:        clientStore,
		progressStore:      progressStore,
		userStore:          userStore,
	}
}

// Invite creates a pending collaboration between the owner and the user
// registered under collaboratorEmail, scoped to one of the owner's clients.
func (m *CollaborationManager) Invite(ctx context.Context, ownerID model.UserID, collaboratorEmail string, clientID model.ClientID) (model.PersistedCollaboration, error) {
	if _, err := m.clientStore.GetClientByID(ctx, ownerID, clientID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(port.NewValidationError("clientId", "unknown client"))
		}

		return nil, errors.WithStack(err)
	}

	collaborator, err := m.userStore.FindUserByEmail(ctx, collaboratorEmail)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(port.NewValidationError("collaboratorEmail", "no user registered under this email"))
		}

		return nil, errors.WithStack(err)
	}

	if collaborator.ID() == ownerID {
		return nil, errors.WithStack(port.NewValidationError("collaboratorEmail", "cannot invite yourself"))
	}

	collaboration, err := m.collaborationStore.CreateCollaboration(ctx, ownerID, collaborator.ID(), clientID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return collaboration, nil
}

// Respond sets the status of a collaboration on behalf of the invited
// collaborator. Any other user, including the owner, gets ErrNotCollaborator.
func (m *CollaborationManager) Respond(ctx context.Context, actorID model.UserID, id model.CollaborationID, status model.CollaborationStatus) (model.PersistedCollaboration, error) {
	collaboration, err := m.collaborationStore.GetCollaborationByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if collaboration.CollaboratorID() != actorID {
		return nil, errors.WithStack(ErrNotCollaborator)
	}

	updated, err := m.collaborationStore.UpdateCollaborationStatus(ctx, id, status)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updated, nil
}

// ListForUser returns every collaboration the user takes part in.
func (m *CollaborationManager) ListForUser(ctx context.Context, userID model.UserID) ([]model.PersistedCollaboration, error) {
	collaborations, err := m.collaborationStore.ListUserCollaborations(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return collaborations, nil
}

// SharedUserProgress is one user's slice of a client's shared progress view.
type SharedUserProgress struct {
	UserID      model.UserID           `json:"userId"`
	DisplayName string                 `json:"displayName"`
	Summary     *model.ProgressSummary `json:"summary"`
}

// SharedProgress aggregates the progress ledgers of every user with accepted
// access to a client.
type SharedProgress struct {
	ClientID model.ClientID       `json:"clientId"`
	Users    []SharedUserProgress `json:"users"`
}

// SharedWorkflowProgress resolves the set of users with accepted access to a
// client (owner plus accepted collaborators) and fans out to each one's
// progress ledger independently. Failed sub-fetches are logged and omitted,
// the call returns the partial view instead of failing whole.
func (m *CollaborationManager) SharedWorkflowProgress(ctx context.Context, actorID model.UserID, clientID model.ClientID) (*SharedProgress, error) {
	collaborations, err := m.collaborationStore.ListClientCollaborations(ctx, clientID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userIDs := make([]model.UserID, 0, len(collaborations)+1)
	seen := map[model.UserID]struct{}{}

	addUser := func(id model.UserID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		userIDs = append(userIDs, id)
	}

	allowed := false

	for _, c := range collaborations {
		addUser(c.OwnerID())

		if c.OwnerID() == actorID {
			allowed = true
		}

		if c.Status() == model.CollaborationStatusAccepted {
			addUser(c.CollaboratorID())

			if c.CollaboratorID() == actorID {
				allowed = true
			}
		}
	}

	// The client's owner always has access, even with no collaboration yet.
	if !allowed {
		if _, err := m.clientStore.GetClientByID(ctx, actorID, clientID); err != nil {
			if errors.Is(err, port.ErrNotFound) {
				return nil, errors.WithStack(ErrNoClientAccess)
			}

			return nil, errors.WithStack(err)
		}

		allowed = true
		addUser(actorID)
	}

	shared := &SharedProgress{
		ClientID: clientID,
		Users:    make([]SharedUserProgress, 0, len(userIDs)),
	}

	for _, userID := range userIDs {
		user, err := m.userStore.GetUserByID(ctx, userID)
		if err != nil {
			slog.ErrorContext(ctx, "could not fetch shared user", slogx.Error(err), slog.String("user", string(userID)))
			continue
		}

		records, err := m.progressStore.GetUserProgress(ctx, userID)
		if err != nil {
			slog.ErrorContext(ctx, "could not fetch shared user progress", slogx.Error(err), slog.String("user", string(userID)))
			continue
		}

		shared.Users = append(shared.Users, SharedUserProgress{
			UserID:      userID,
			DisplayName: user.DisplayName(),
			Summary:     Aggregate(userID, records),
		})
	}

	return shared, nil
}
