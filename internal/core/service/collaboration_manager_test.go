package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
)

type fakeCollaboration struct {
	id             model.CollaborationID
	ownerID        model.UserID
	collaboratorID model.UserID
	clientID       model.ClientID
	status         model.CollaborationStatus
	acceptedAt     *time.Time
}

func (c *fakeCollaboration) ID() model.CollaborationID          { return c.id }
func (c *fakeCollaboration) OwnerID() model.UserID              { return c.ownerID }
func (c *fakeCollaboration) CollaboratorID() model.UserID       { return c.collaboratorID }
func (c *fakeCollaboration) ClientID() model.ClientID           { return c.clientID }
func (c *fakeCollaboration) Status() model.CollaborationStatus  { return c.status }
func (c *fakeCollaboration) AcceptedAt() *time.Time             { return c.acceptedAt }
func (c *fakeCollaboration) CreatedAt() time.Time               { return time.Time{} }
func (c *fakeCollaboration) UpdatedAt() time.Time               { return time.Time{} }

var _ model.PersistedCollaboration = &fakeCollaboration{}

type fakeCollaborationStore struct {
	collaborations map[model.CollaborationID]*fakeCollaboration
}

func newFakeCollaborationStore() *fakeCollaborationStore {
	return &fakeCollaborationStore{
		collaborations: map[model.CollaborationID]*fakeCollaboration{},
	}
}

func (s *fakeCollaborationStore) CreateCollaboration(ctx context.Context, ownerID, collaboratorID model.UserID, clientID model.ClientID) (model.PersistedCollaboration, error) {
	c := &fakeCollaboration{
		id:             model.NewCollaborationID(),
		ownerID:        ownerID,
		collaboratorID: collaboratorID,
		clientID:       clientID,
		status:         model.CollaborationStatusPending,
	}
	s.collaborations[c.id] = c
	return c, nil
}

func (s *fakeCollaborationStore) GetCollaborationByID(ctx context.Context, id model.CollaborationID) (model.PersistedCollaboration, error) {
	c, ok := s.collaborations[id]
	if !ok {
		return nil, errors.WithStack(port.ErrNotFound)
	}
	return c, nil
}

func (s *fakeCollaborationStore) ListUserCollaborations(ctx context.Context, userID model.UserID) ([]model.PersistedCollaboration, error) {
	var result []model.PersistedCollaboration
	for _, c := range s.collaborations {
		if c.ownerID == userID || c.collaboratorID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *fakeCollaborationStore) ListClientCollaborations(ctx context.Context, clientID model.ClientID) ([]model.PersistedCollaboration, error) {
	var result []model.PersistedCollaboration
	for _, c := range s.collaborations {
		if c.clientID == clientID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *fakeCollaborationStore) UpdateCollaborationStatus(ctx context.Context, id model.CollaborationID, status model.CollaborationStatus) (model.PersistedCollaboration, error) {
	c, ok := s.collaborations[id]
	if !ok {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	c.status = status
	if status == model.CollaborationStatusAccepted {
		now := time.Now().UTC()
		c.acceptedAt = &now
	} else {
		c.acceptedAt = nil
	}

	return c, nil
}

var _ port.CollaborationStore = &fakeCollaborationStore{}

type fakeClientStore struct {
	clients map[model.ClientID]*model.Client
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: map[model.ClientID]*model.Client{}}
}

func (s *fakeClientStore) CreateClient(ctx context.Context, client *model.Client) error {
	s.clients[client.ID] = client
	return nil
}

func (s *fakeClientStore) GetClientByID(ctx context.Context, userID model.UserID, id model.ClientID) (*model.Client, error) {
	c, ok := s.clients[id]
	if !ok || c.UserID != userID {
		return nil, errors.WithStack(port.ErrNotFound)
	}
	return c, nil
}

func (s *fakeClientStore) ListClients(ctx context.Context, userID model.UserID) ([]*model.Client, error) {
	var result []*model.Client
	for _, c := range s.clients {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *fakeClientStore) UpdateClient(ctx context.Context, userID model.UserID, id model.ClientID, updates port.ClientUpdates) (*model.Client, error) {
	return nil, errors.WithStack(port.ErrNotFound)
}

func (s *fakeClientStore) DeleteClient(ctx context.Context, userID model.UserID, id model.ClientID) error {
	return nil
}

var _ port.ClientStore = &fakeClientStore{}

type fakeProgressStore struct {
	records map[model.UserID][]model.PersistedProgressRecord
	failFor map[model.UserID]error
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{
		records: map[model.UserID][]model.PersistedProgressRecord{},
		failFor: map[model.UserID]error{},
	}
}

func (s *fakeProgressStore) UpsertProgress(ctx context.Context, userID model.UserID, componentID model.ComponentID, stage model.Stage, updates port.ProgressUpdates) (model.PersistedProgressRecord, error) {
	record := &stubProgressRecord{
		componentID: componentID,
		stage:       stage,
		completed:   updates.Completed != nil && *updates.Completed,
	}
	s.records[userID] = append(s.records[userID], record)
	return record, nil
}

func (s *fakeProgressStore) GetUserProgress(ctx context.Context, userID model.UserID) ([]model.PersistedProgressRecord, error) {
	if err, ok := s.failFor[userID]; ok {
		return nil, err
	}
	return s.records[userID], nil
}

var _ port.ProgressStore = &fakeProgressStore{}

type fakeUserStore struct {
	users map[model.UserID]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[model.UserID]model.User{}}
}

func (s *fakeUserStore) addUser(email, displayName string) model.User {
	user := model.NewUser(model.NewUserID(), email, displayName, model.RoleUser)
	s.users[user.ID()] = user
	return user
}

func (s *fakeUserStore) CreateUser(ctx context.Context, params port.CreateUserParams) (model.User, error) {
	return s.addUser(params.Email, params.DisplayName), nil
}

func (s *fakeUserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, errors.WithStack(port.ErrNotFound)
	}
	return user, nil
}

func (s *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	for _, u := range s.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (s *fakeUserStore) GetPasswordHash(ctx context.Context, userID model.UserID) (string, error) {
	return "", errors.WithStack(port.ErrNotFound)
}

var _ port.UserStore = &fakeUserStore{}

func newTestCollaborationManager() (*CollaborationManager, *fakeCollaborationStore, *fakeClientStore, *fakeProgressStore, *fakeUserStore) {
	collaborationStore := newFakeCollaborationStore()
	clientStore := newFakeClientStore()
	progressStore := newFakeProgressStore()
	userStore := newFakeUserStore()

	manager := NewCollaborationManager(collaborationStore, clientStore, progressStore, userStore)

	return manager, collaborationStore, clientStore, progressStore, userStore
}

func TestRespondOnlyInvitedCollaboratorMayTransition(t *testing.T) {
	manager, collaborationStore, _, _, _ := newTestCollaborationManager()
	ctx := context.Background()

	owner := model.NewUserID()
	collaborator := model.NewUserID()

	collaboration, err := collaborationStore.CreateCollaboration(ctx, owner, collaborator, model.NewClientID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.Respond(ctx, owner, collaboration.ID(), model.CollaborationStatusAccepted); !errors.Is(err, ErrNotCollaborator) {
		t.Errorf("expected ErrNotCollaborator for owner, got %+v", err)
	}

	accepted, err := manager.Respond(ctx, collaborator, collaboration.ID(), model.CollaborationStatusAccepted)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.CollaborationStatusAccepted, accepted.Status(); e != g {
		t.Errorf("accepted.Status(): expected %q, got %q", e, g)
	}

	if accepted.AcceptedAt() == nil {
		t.Errorf("accepted.AcceptedAt() should be stamped")
	}
}

func TestInviteRejectsUnknownClientAndSelf(t *testing.T) {
	manager, _, clientStore, _, userStore := newTestCollaborationManager()
	ctx := context.Background()

	owner := userStore.addUser("owner@praxis.test", "Owner")
	invited := userStore.addUser("partner@praxis.test", "Partner")

	var validationErr *port.ValidationError

	if _, err := manager.Invite(ctx, owner.ID(), invited.Email(), model.NewClientID()); !errors.As(err, &validationErr) {
		t.Errorf("expected validation error for unknown client, got %+v", err)
	}

	client := &model.Client{ID: model.NewClientID(), UserID: owner.ID(), Name: "Acme"}
	if err := clientStore.CreateClient(ctx, client); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.Invite(ctx, owner.ID(), owner.Email(), client.ID); !errors.As(err, &validationErr) {
		t.Errorf("expected validation error for self invite, got %+v", err)
	}

	collaboration, err := manager.Invite(ctx, owner.ID(), invited.Email(), client.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.CollaborationStatusPending, collaboration.Status(); e != g {
		t.Errorf("collaboration.Status(): expected %q, got %q", e, g)
	}
}

func TestSharedWorkflowProgressReturnsPartialResults(t *testing.T) {
	manager, collaborationStore, _, progressStore, userStore := newTestCollaborationManager()
	ctx := context.Background()

	owner := userStore.addUser("owner@praxis.test", "Owner")
	partner := userStore.addUser("partner@praxis.test", "Partner")
	clientID := model.NewClientID()

	collaboration, err := collaborationStore.CreateCollaboration(ctx, owner.ID(), partner.ID(), clientID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := collaborationStore.UpdateCollaborationStatus(ctx, collaboration.ID(), model.CollaborationStatusAccepted); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	completed := true
	if _, err := progressStore.UpsertProgress(ctx, owner.ID(), model.ComponentGovernanceFramework, model.StageInitiation, port.ProgressUpdates{Completed: &completed}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// The partner's ledger fetch fails, the owner's slice must survive.
	progressStore.failFor[partner.ID()] = errors.New("store unavailable")

	shared, err := manager.SharedWorkflowProgress(ctx, owner.ID(), clientID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(shared.Users); e != g {
		t.Fatalf("len(shared.Users): expected %d, got %d", e, g)
	}

	if e, g := owner.ID(), shared.Users[0].UserID; e != g {
		t.Errorf("shared.Users[0].UserID: expected %q, got %q", e, g)
	}
}

func TestSharedWorkflowProgressDeniesStrangers(t *testing.T) {
	manager, collaborationStore, _, _, userStore := newTestCollaborationManager()
	ctx := context.Background()

	owner := userStore.addUser("owner@praxis.test", "Owner")
	partner := userStore.addUser("partner@praxis.test", "Partner")
	stranger := userStore.addUser("stranger@praxis.test", "Stranger")
	clientID := model.NewClientID()

	if _, err := collaborationStore.CreateCollaboration(ctx, owner.ID(), partner.ID(), clientID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.SharedWorkflowProgress(ctx, stranger.ID(), clientID); !errors.Is(err, ErrNoClientAccess) {
		t.Errorf("expected ErrNoClientAccess, got %+v", err)
	}

	// A pending collaborator has no access either.
	if _, err := manager.SharedWorkflowProgress(ctx, partner.ID(), clientID); !errors.Is(err, ErrNoClientAccess) {
		t.Errorf("expected ErrNoClientAccess for pending collaborator, got %+v", err)
	}
}
