package samgov

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/port"
)

func TestSearchOpportunitiesWithoutCredentials(t *testing.T) {
	client := New()

	_, err := client.SearchOpportunities(context.Background(), port.OpportunitySearchQuery{
		Keyword: "program management",
	})
	if !errors.Is(err, port.ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %+v", err)
	}
}

func TestSearchOpportunitiesMapsUpstreamRecords(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"api_key": r.URL.Query().Get("api_key"),
			"title":   r.URL.Query().Get("title"),
			"ptype":   r.URL.Query().Get("ptype"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totalRecords": 1,
			"opportunitiesData": [
				{
					"title": "Program Support Services",
					"solicitationNumber": "W912DY-26-R-0012",
					"fullParentPathName": "DEPT OF DEFENSE.DEPT OF THE ARMY",
					"type": "Solicitation",
					"typeOfSetAsideDescription": "Total Small Business Set-Aside",
					"responseDeadLine": "2026-10-15T17:00:00-04:00",
					"description": "https://api.sam.gov/prod/opportunities/v1/noticedesc?noticeid=abc"
				}
			]
		}`))
	}))
	defer server.Close()

	client := New(
		WithBaseURL(server.URL),
		WithAPIKey("test-key"),
	)

	summaries, err := client.SearchOpportunities(context.Background(), port.OpportunitySearchQuery{
		Keyword:    "program",
		NoticeType: "o",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "test-key", gotQuery["api_key"]; e != g {
		t.Errorf("api_key: expected %q, got %q", e, g)
	}

	if e, g := "program", gotQuery["title"]; e != g {
		t.Errorf("title: expected %q, got %q", e, g)
	}

	if e, g := "o", gotQuery["ptype"]; e != g {
		t.Errorf("ptype: expected %q, got %q", e, g)
	}

	if e, g := 1, len(summaries); e != g {
		t.Fatalf("len(summaries): expected %d, got %d", e, g)
	}

	summary := summaries[0]

	if e, g := "W912DY-26-R-0012", summary.SolicitationNumber; e != g {
		t.Errorf("summary.SolicitationNumber: expected %q, got %q", e, g)
	}

	if e, g := "DEPT OF DEFENSE.DEPT OF THE ARMY", summary.Agency; e != g {
		t.Errorf("summary.Agency: expected %q, got %q", e, g)
	}

	if summary.ResponseDeadline == nil {
		t.Errorf("summary.ResponseDeadline should be parsed")
	}

	if summary.Raw == "" {
		t.Errorf("summary.Raw should carry the upstream record")
	}
}

func TestSearchOpportunitiesSurfacesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(
		WithBaseURL(server.URL),
		WithAPIKey("test-key"),
	)

	_, err := client.SearchOpportunities(context.Background(), port.OpportunitySearchQuery{Keyword: "x"})
	if err == nil {
		t.Fatalf("expected an error")
	}

	if errors.Is(err, port.ErrMissingCredentials) {
		t.Errorf("upstream failure must not look like a credential problem")
	}
}
