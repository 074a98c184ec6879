// Package httpapi is the HTTP surface over the service layer. Handlers only
// parse, delegate and encode; every decision lives in the services.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gocircle/internal/access"
	"gocircle/internal/common"
	"gocircle/internal/dbmongo"
	"gocircle/internal/engage"
	"gocircle/internal/graph"
	"gocircle/internal/identity"
	"gocircle/internal/trending"
	"gocircle/internal/vault"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// EventReader serves the per-content event listing for owners.
type EventReader interface {
	ListByContent(ctx context.Context, contentID uint64, from, to time.Time, limit int64) ([]dbmongo.InteractionEvent, error)
}

type Handler struct {
	identities identity.Service
	contents   access.Service
	relations  graph.Service
	events     engage.Service
	ranking    trending.Service
	eventLog   EventReader
	logger     *logrus.Logger
	vaultKey   []byte
}

func NewHandler(
	identities identity.Service,
	contents access.Service,
	relations graph.Service,
	events engage.Service,
	ranking trending.Service,
	eventLog EventReader,
	logger *logrus.Logger,
	vaultKey []byte,
) *Handler {
	return &Handler{
		identities: identities,
		contents:   contents,
		relations:  relations,
		events:     events,
		ranking:    ranking,
		eventLog:   eventLog,
		logger:     logger,
		vaultKey:   vaultKey,
	}
}

// Routes mounts all endpoints. Read endpoints take OptionalAuth so public
// content stays reachable anonymously; mutations require a session.
func (h *Handler) Routes() *mux.Router {
	root := mux.NewRouter()
	root.Use(h.withVaultKey)

	root.HandleFunc("/health", h.health).Methods(http.MethodGet)

	r := root.PathPrefix("/v1").Subrouter()

	r.HandleFunc("/identities", h.createIdentity).Methods(http.MethodPost)
	r.Handle("/identities/me", common.RequireAuth(http.HandlerFunc(h.getOwnProfile))).Methods(http.MethodGet)
	r.Handle("/identities/me", common.RequireAuth(http.HandlerFunc(h.deleteOwnIdentity))).Methods(http.MethodDelete)
	r.Handle("/identities/me/deactivate", common.RequireAuth(http.HandlerFunc(h.deactivateOwnIdentity))).Methods(http.MethodPost)

	r.Handle("/contents", common.RequireAuth(http.HandlerFunc(h.createContent))).Methods(http.MethodPost)
	r.Handle("/contents/{id:[0-9]+}", common.OptionalAuth(http.HandlerFunc(h.getContent))).Methods(http.MethodGet)
	r.Handle("/contents/{id:[0-9]+}", common.RequireAuth(http.HandlerFunc(h.removeContent))).Methods(http.MethodDelete)
	r.Handle("/contents/{id:[0-9]+}/visibility", common.RequireAuth(http.HandlerFunc(h.setVisibility))).Methods(http.MethodPatch)
	r.Handle("/identities/{id:[0-9]+}/contents", common.OptionalAuth(http.HandlerFunc(h.listUserContent))).Methods(http.MethodGet)

	r.Handle("/contents/{id:[0-9]+}/events", common.OptionalAuth(http.HandlerFunc(h.recordEvent))).Methods(http.MethodPost)
	r.Handle("/contents/{id:[0-9]+}/events", common.RequireAuth(http.HandlerFunc(h.listContentEvents))).Methods(http.MethodGet)

	r.Handle("/relationships/connections", common.RequireAuth(http.HandlerFunc(h.requestConnection))).Methods(http.MethodPost)
	r.Handle("/relationships/connections", common.RequireAuth(http.HandlerFunc(h.listConnections))).Methods(http.MethodGet)
	r.Handle("/relationships/connections/pending", common.RequireAuth(http.HandlerFunc(h.listPendingRequests))).Methods(http.MethodGet)
	r.Handle("/relationships/connections/{id:[0-9]+}/accept", common.RequireAuth(http.HandlerFunc(h.acceptConnection))).Methods(http.MethodPost)
	r.Handle("/relationships/connections/{id:[0-9]+}/reject", common.RequireAuth(http.HandlerFunc(h.rejectConnection))).Methods(http.MethodPost)
	r.Handle("/relationships/connections/{id:[0-9]+}", common.RequireAuth(http.HandlerFunc(h.cancelConnection))).Methods(http.MethodDelete)
	r.Handle("/relationships/blocks/{id:[0-9]+}", common.RequireAuth(http.HandlerFunc(h.block))).Methods(http.MethodPost)
	r.Handle("/relationships/blocks/{id:[0-9]+}", common.RequireAuth(http.HandlerFunc(h.unblock))).Methods(http.MethodDelete)
	r.Handle("/relationships/follows/{id:[0-9]+}", common.RequireAuth(http.HandlerFunc(h.follow))).Methods(http.MethodPost)
	r.Handle("/relationships/follows/{id:[0-9]+}", common.RequireAuth(http.HandlerFunc(h.unfollow))).Methods(http.MethodDelete)

	r.Handle("/reports", common.RequireAuth(http.HandlerFunc(h.fileReport))).Methods(http.MethodPost)
	r.Handle("/reports/{id:[0-9]+}", common.RequireAuth(http.HandlerFunc(h.getReport))).Methods(http.MethodGet)

	r.HandleFunc("/trending", h.getTrending).Methods(http.MethodGet)

	return root
}

// withVaultKey threads the active field-encryption key through each request
// context. Without a configured key the vault reports KeyUnavailable on use.
func (h *Handler) withVaultKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.vaultKey) > 0 {
			r = r.WithContext(vault.WithKey(r.Context(), h.vaultKey))
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			h.logger.WithError(err).Error("encoding response failed")
		}
	}
}

// writeError maps the service error taxonomy onto HTTP statuses. Denial and
// absence share 404; conflicts and rejected transitions share 409; transient
// and unavailable-window failures ask the caller to retry.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrDuplicateEdge), errors.Is(err, common.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, common.ErrSelfReference):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrTransient), errors.Is(err, common.ErrWindowUnavailable), errors.Is(err, common.ErrKeyUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, common.ErrIntegrity):
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		h.logger.WithFields(logrus.Fields{
			"path":   r.URL.Path,
			"method": r.Method,
			"actor":  common.HandleFromContext(r.Context()),
		}).WithError(err).Error("request failed")
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) decode(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
