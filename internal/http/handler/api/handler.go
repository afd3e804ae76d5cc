package api

import (
	"net/http"

	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"github.com/praxishq/praxis/internal/core/service"
	"github.com/praxishq/praxis/internal/http/middleware/authz"
)

type Handler struct {
	progressManager      *service.ProgressManager
	collaborationManager *service.CollaborationManager
	clientStore          port.ClientStore
	ledgerStore          port.LedgerStore
	messageStore         port.MessageStore
	opportunityStore     port.OpportunityStore
	opportunitySearcher  port.OpportunitySearcher
	guideStore           port.GuideStore
	userStore            port.UserStore
	mux                  *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(
	progressManager *service.ProgressManager,
	collaborationManager *service.CollaborationManager,
	clientStore port.ClientStore,
	ledgerStore port.LedgerStore,
	messageStore port.MessageStore,
	opportunityStore port.OpportunityStore,
	opportunitySearcher port.OpportunitySearcher,
	guideStore port.GuideStore,
	userStore port.UserStore,
) *Handler {
	h := &Handler{
		progressManager:      progressManager,
		collaborationManager: collaborationManager,
		clientStore:          clientStore,
		ledgerStore:          ledgerStore,
		messageStore:         messageStore,
		opportunityStore:     opportunityStore,
		opportunitySearcher:  opportunitySearcher,
		guideStore:           guideStore,
		userStore:            userStore,
		mux:                  &http.ServeMux{},
	}

	assertUser := authz.Middleware(nil, authz.Has(model.RoleUser))
	assertAdmin := authz.Middleware(nil, authz.Has(model.RoleAdmin))

	h.mux.Handle("GET /progress", assertUser(http.HandlerFunc(h.handleListProgress)))
	h.mux.Handle("PUT /progress", assertUser(http.HandlerFunc(h.handleUpdateProgress)))
	h.mux.Handle("GET /progress/summary", assertUser(http.HandlerFunc(h.handleProgressSummary)))

	h.mux.Handle("GET /artifacts", assertUser(http.HandlerFunc(h.handleListArtifacts)))
	h.mux.Handle("PUT /artifacts", assertUser(http.HandlerFunc(h.handleUpdateArtifact)))
	h.mux.Handle("DELETE /artifacts/{artifactID}", assertUser(http.HandlerFunc(h.handleDeleteArtifact)))

	h.mux.Handle("GET /clients", assertUser(http.HandlerFunc(h.handleListClients)))
	h.mux.Handle("POST /clients", assertUser(http.HandlerFunc(h.handleCreateClient)))
	h.mux.Handle("GET /clients/{clientID}", assertUser(http.HandlerFunc(h.handleGetClient)))
	h.mux.Handle("PUT /clients/{clientID}", assertUser(http.HandlerFunc(h.handleUpdateClient)))
	h.mux.Handle("DELETE /clients/{clientID}", assertUser(http.HandlerFunc(h.handleDeleteClient)))
	h.mux.Handle("GET /clients/{clientID}/shared-progress", assertUser(http.HandlerFunc(h.handleSharedProgress)))

	h.mux.Handle("GET /collaborations", assertUser(http.HandlerFunc(h.handleListCollaborations)))
	h.mux.Handle("POST /collaborations", assertUser(http.HandlerFunc(h.handleCreateCollaboration)))
	h.mux.Handle("POST /collaborations/{collaborationID}/respond", assertUser(http.HandlerFunc(h.handleRespondCollaboration)))

	h.mux.Handle("GET /time-entries", assertUser(http.HandlerFunc(h.handleListTimeEntries)))
	h.mux.Handle("POST /time-entries", assertUser(http.HandlerFunc(h.handleCreateTimeEntry)))
	h.mux.Handle("PUT /time-entries/{timeEntryID}", assertUser(http.HandlerFunc(h.handleUpdateTimeEntry)))
	h.mux.Handle("DELETE /time-entries/{timeEntryID}", assertUser(http.HandlerFunc(h.handleDeleteTimeEntry)))

	h.mux.Handle("GET /actions", assertUser(http.HandlerFunc(h.handleListActions)))
	h.mux.Handle("POST /actions", assertUser(http.HandlerFunc(h.handleCreateAction)))
	h.mux.Handle("PUT /actions/{actionID}", assertUser(http.HandlerFunc(h.handleUpdateAction)))
	h.mux.Handle("DELETE /actions/{actionID}", assertUser(http.HandlerFunc(h.handleDeleteAction)))

	h.mux.Handle("GET /invoices", assertUser(http.HandlerFunc(h.handleListInvoices)))
	h.mux.Handle("POST /invoices", assertUser(http.HandlerFunc(h.handleCreateInvoice)))
	h.mux.Handle("PUT /invoices/{invoiceID}", assertUser(http.HandlerFunc(h.handleUpdateInvoice)))
	h.mux.Handle("DELETE /invoices/{invoiceID}", assertUser(http.HandlerFunc(h.handleDeleteInvoice)))

	h.mux.Handle("GET /messages", assertUser(http.HandlerFunc(h.handleListMessages)))
	h.mux.Handle("POST /messages", assertUser(http.HandlerFunc(h.handleSendMessage)))
	h.mux.Handle("POST /messages/{messageID}/read", assertUser(http.HandlerFunc(h.handleMarkMessageRead)))

	h.mux.Handle("GET /opportunities/search", assertUser(http.HandlerFunc(h.handleSearchOpportunities)))
	h.mux.Handle("GET /opportunities", assertUser(http.HandlerFunc(h.handleListOpportunities)))
	h.mux.Handle("POST /opportunities", assertUser(http.HandlerFunc(h.handleSaveOpportunity)))
	h.mux.Handle("DELETE /opportunities/{opportunityID}", assertUser(http.HandlerFunc(h.handleDeleteOpportunity)))

	h.mux.Handle("GET /guides", assertUser(http.HandlerFunc(h.handleListGuides)))
	h.mux.Handle("GET /guides/{slug}", assertUser(http.HandlerFunc(h.handleGetGuide)))
	h.mux.Handle("PUT /guides/{slug}", assertAdmin(http.HandlerFunc(h.handleSaveGuide)))

	return h
}

var _ http.Handler = &Handler{}
