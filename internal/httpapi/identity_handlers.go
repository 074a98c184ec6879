package httpapi

import (
	"net/http"

	"gocircle/internal/common"
)

type createIdentityRequest struct {
	Handle string `json:"handle"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

type createIdentityResponse struct {
	IdentityID uint64 `json:"identity_id"`
	Handle     string `json:"handle"`
	Token      string `json:"token"`
}

func (h *Handler) createIdentity(w http.ResponseWriter, r *http.Request) {
	var req createIdentityRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	id, err := h.identities.Create(r.Context(), req.Handle, req.Email, req.Phone)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := common.GenerateToken(id.IdentityID, id.Handle, id.Admin)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, createIdentityResponse{
		IdentityID: id.IdentityID,
		Handle:     id.Handle,
		Token:      token,
	})
}

func (h *Handler) getOwnProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.identities.GetProfile(r.Context(), common.ViewerFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) deactivateOwnIdentity(w http.ResponseWriter, r *http.Request) {
	if err := h.identities.Deactivate(r.Context(), common.ViewerFromContext(r.Context())); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func (h *Handler) deleteOwnIdentity(w http.ResponseWriter, r *http.Request) {
	if err := h.identities.Delete(r.Context(), common.ViewerFromContext(r.Context())); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
