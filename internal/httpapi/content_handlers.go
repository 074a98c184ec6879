package httpapi

import (
	"net/http"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"
)

type createContentRequest struct {
	Kind       string `json:"kind"`
	Body       string `json:"body,omitempty"`
	Visibility string `json:"visibility"`
}

type contentResponse struct {
	ContentID       uint64  `json:"content_id"`
	OwnerID         uint64  `json:"owner_id"`
	Kind            string  `json:"kind"`
	Body            string  `json:"body,omitempty"`
	Visibility      string  `json:"visibility"`
	Views           uint64  `json:"views"`
	UniqueViews     uint64  `json:"unique_views"`
	Likes           uint64  `json:"likes"`
	Comments        uint64  `json:"comments"`
	Shares          uint64  `json:"shares"`
	Saves           uint64  `json:"saves"`
	EngagementScore float64 `json:"engagement_score"`
	PublishedAt     string  `json:"published_at"`
}

func toContentResponse(c *dbmysql.Content) contentResponse {
	resp := contentResponse{
		ContentID:       c.ContentID,
		OwnerID:         c.OwnerID,
		Kind:            c.Kind,
		Visibility:      c.Visibility,
		Views:           c.Views,
		UniqueViews:     c.UniqueViews,
		Likes:           c.Likes,
		Comments:        c.Comments,
		Shares:          c.Shares,
		Saves:           c.Saves,
		EngagementScore: c.EngagementScore,
		PublishedAt:     c.PublishedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if c.Body != nil {
		resp.Body = *c.Body
	}
	return resp
}

func (h *Handler) createContent(w http.ResponseWriter, r *http.Request) {
	var req createContentRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ownerID := common.ViewerFromContext(r.Context())
	contentID, err := h.contents.CreateContent(r.Context(), ownerID, req.Kind, req.Body, common.Visibility(req.Visibility))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]uint64{"content_id": contentID})
}

func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	contentID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	content, err := h.contents.GetContent(r.Context(), common.ViewerFromContext(r.Context()), contentID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toContentResponse(content))
}

func (h *Handler) listUserContent(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items, err := h.contents.ListUserContent(r.Context(), common.ViewerFromContext(r.Context()), ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]contentResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toContentResponse(&items[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type setVisibilityRequest struct {
	Visibility string `json:"visibility"`
}

func (h *Handler) setVisibility(w http.ResponseWriter, r *http.Request) {
	contentID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req setVisibilityRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	actorID := common.ViewerFromContext(r.Context())
	if err := h.contents.SetVisibility(r.Context(), actorID, contentID, common.Visibility(req.Visibility)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"visibility": req.Visibility})
}

func (h *Handler) removeContent(w http.ResponseWriter, r *http.Request) {
	contentID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	if err := h.contents.RemoveContent(ctx, common.ViewerFromContext(ctx), common.AdminFromContext(ctx), contentID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type fileReportRequest struct {
	ContentID uint64 `json:"content_id"`
	Reason    string `json:"reason"`
}

func (h *Handler) fileReport(w http.ResponseWriter, r *http.Request) {
	var req fileReportRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	reporterID := common.ViewerFromContext(r.Context())
	reportID, err := h.contents.FileReport(r.Context(), reporterID, req.ContentID, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]uint64{"report_id": reportID})
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	report, err := h.contents.GetReport(ctx, common.ViewerFromContext(ctx), common.AdminFromContext(ctx), reportID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
