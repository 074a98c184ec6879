package httpapi

import (
	"context"
	"net/http"

	"gocircle/internal/common"
)

type connectionRequest struct {
	TargetID uint64 `json:"target_id"`
}

func (h *Handler) requestConnection(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	requesterID := common.ViewerFromContext(r.Context())
	if err := h.relations.RequestConnection(r.Context(), requesterID, req.TargetID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"status": "pending"})
}

// acceptConnection: the path id is the requester whose pending request the
// authenticated receiver is answering.
func (h *Handler) acceptConnection(w http.ResponseWriter, r *http.Request) {
	requesterID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	receiverID := common.ViewerFromContext(r.Context())
	if err := h.relations.AcceptConnection(r.Context(), receiverID, requesterID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

func (h *Handler) rejectConnection(w http.ResponseWriter, r *http.Request) {
	requesterID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	receiverID := common.ViewerFromContext(r.Context())
	if err := h.relations.RejectConnection(r.Context(), receiverID, requesterID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

func (h *Handler) cancelConnection(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	requesterID := common.ViewerFromContext(r.Context())
	if err := h.relations.CancelConnection(r.Context(), requesterID, targetID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listConnections(w http.ResponseWriter, r *http.Request) {
	ids, err := h.relations.ListConnections(r.Context(), common.ViewerFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]uint64{"connections": ids})
}

func (h *Handler) listPendingRequests(w http.ResponseWriter, r *http.Request) {
	pending, err := h.relations.ListPendingRequests(r.Context(), common.ViewerFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pending)
}

func (h *Handler) block(w http.ResponseWriter, r *http.Request) {
	h.edgeMutation(w, r, h.relations.Block, http.StatusCreated)
}

func (h *Handler) unblock(w http.ResponseWriter, r *http.Request) {
	h.edgeMutation(w, r, h.relations.Unblock, http.StatusNoContent)
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	h.edgeMutation(w, r, h.relations.Follow, http.StatusCreated)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	h.edgeMutation(w, r, h.relations.Unfollow, http.StatusNoContent)
}

func (h *Handler) edgeMutation(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actorID, targetID uint64) error, status int) {
	targetID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := op(r.Context(), common.ViewerFromContext(r.Context()), targetID); err != nil {
		h.writeError(w, r, err)
		return
	}
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	h.writeJSON(w, status, map[string]string{"status": "ok"})
}
