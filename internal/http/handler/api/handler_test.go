package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"github.com/praxishq/praxis/internal/core/service"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

type fakeSearcher struct {
	summaries []port.OpportunitySummary
	err       error
}

func (s *fakeSearcher) SearchOpportunities(ctx context.Context, query port.OpportunitySearchQuery) ([]port.OpportunitySummary, error) {
	if s.err != nil {
		return nil, errors.WithStack(s.err)
	}

	return s.summaries, nil
}

func newTestHandler(searcher port.OpportunitySearcher) *Handler {
	return NewHandler(
		service.NewProgressManager(nil, nil),
		nil, nil, nil, nil, nil,
		searcher,
		nil, nil,
	)
}

func asUser(r *http.Request) *http.Request {
	user := model.NewUser(model.NewUserID(), "test@praxis.local", "Test User", model.RoleUser)
	return r.WithContext(httpCtx.SetUser(r.Context(), user))
}

func TestSearchOpportunitiesWithoutCredentialIsNotAnError(t *testing.T) {
	handler := newTestHandler(&fakeSearcher{err: port.ErrMissingCredentials})

	req := asUser(httptest.NewRequest(http.MethodGet, "/opportunities/search?keyword=program", nil))
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	var payload SearchOpportunitiesResponse
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !payload.NeedsCredential {
		t.Errorf("needsCredential should be set")
	}

	if e, g := 0, len(payload.Opportunities); e != g {
		t.Errorf("len(opportunities): expected %d, got %d", e, g)
	}
}

func TestSearchOpportunitiesUpstreamFailureIsBadGateway(t *testing.T) {
	handler := newTestHandler(&fakeSearcher{err: errors.New("upstream broken")})

	req := asUser(httptest.NewRequest(http.MethodGet, "/opportunities/search?keyword=program", nil))
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusBadGateway, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}
}

func TestUpdateProgressRejectsUnknownComponent(t *testing.T) {
	handler := newTestHandler(&fakeSearcher{})

	body := strings.NewReader(`{"componentId":"not_a_component","stage":"initiation","completed":true}`)

	req := asUser(httptest.NewRequest(http.MethodPut, "/progress", body))
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	var payload errorResponse
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "componentId", payload.Field; e != g {
		t.Errorf("field: expected %q, got %q", e, g)
	}
}

func TestAnonymousRequestsAreForbidden(t *testing.T) {
	handler := newTestHandler(&fakeSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/progress", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusForbidden, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}
}
