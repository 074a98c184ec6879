package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/engage"
)

type recordEventRequest struct {
	Kind    string                 `json:"kind"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// recordEvent accepts interaction events. The viewer must be able to see the
// target, so anonymous events only ever land on public content.
func (h *Handler) recordEvent(w http.ResponseWriter, r *http.Request) {
	contentID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req recordEventRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	viewerID := common.ViewerFromContext(ctx)
	if _, err := h.contents.GetContent(ctx, viewerID, contentID); err != nil {
		h.writeError(w, r, err)
		return
	}

	ev := engage.Event{
		ContentID:  contentID,
		ActorID:    viewerID,
		Kind:       engage.Kind(req.Kind),
		OccurredAt: time.Now().UTC(),
		Payload:    req.Payload,
	}
	if err := h.events.RecordEvent(ctx, ev); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

// listContentEvents serves the raw event window to the content owner or a
// moderation actor. Anyone else gets the same 404 as for a missing item.
func (h *Handler) listContentEvents(w http.ResponseWriter, r *http.Request) {
	contentID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	viewerID := common.ViewerFromContext(ctx)
	content, err := h.contents.GetContent(ctx, viewerID, contentID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if viewerID != content.OwnerID && !common.AdminFromContext(ctx) {
		h.writeError(w, r, common.ErrNotFound)
		return
	}

	to := time.Now().UTC()
	from := to.Add(-7 * 24 * time.Hour)
	limit := int64(100)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	events, err := h.eventLog.ListByContent(ctx, contentID, from, to, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

func (h *Handler) getTrending(w http.ResponseWriter, r *http.Request) {
	items, err := h.ranking.Current(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}
