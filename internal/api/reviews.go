package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// reviewsAPIHandler provides REST handlers for tool reviews.
type reviewsAPIHandler struct {
	reviews *store.ReviewStore
	tools   *store.ToolStore
}

// registerReviewReadRoutes registers the public review listing route on r.
func registerReviewReadRoutes(r chi.Router, reviews *store.ReviewStore) {
	h := &reviewsAPIHandler{reviews: reviews}
	r.Get("/tools/{id}/reviews", h.List)
}

// registerReviewWriteRoutes registers the authenticated review upsert route on r.
func registerReviewWriteRoutes(r chi.Router, reviews *store.ReviewStore, tools *store.ToolStore) {
	h := &reviewsAPIHandler{reviews: reviews, tools: tools}
	r.Put("/tools/{id}/reviews", h.Upsert)
}

// List returns all reviews of a tool, newest first, with the rating summary.
// GET /api/v1/tools/{id}/reviews
//
// @Summary      List reviews
// @Description  Returns all reviews of a tool, newest first, plus the average rating and count.
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Tool ID"
// @Success      200  {object}  ReviewListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tools/{id}/reviews [get]
func (h *reviewsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	toolID := chi.URLParam(r, "id")

	reviews, err := h.reviews.ListByTool(r.Context(), toolID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	avg, count, err := h.reviews.AverageForTool(r.Context(), toolID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &ReviewListResponse{
		Reviews:     make([]*ReviewResponse, 0, len(reviews)),
		AvgRating:   avg,
		ReviewCount: count,
	}
	for _, rev := range reviews {
		resp.Reviews = append(resp.Reviews, toReviewResponse(rev))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Upsert creates or replaces the caller's review of a tool. One review per
// (tool, user) pair; a resubmission overwrites rating and comment.
// PUT /api/v1/tools/{id}/reviews
//
// @Summary      Submit a review
// @Description  Creates or replaces the caller's review of a tool. Rating must be 1-5.
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Tool ID"
// @Param        body  body      UpsertReviewRequest  true  "Rating and comment"
// @Success      200   {object}  ReviewResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tools/{id}/reviews [put]
func (h *reviewsAPIHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	toolID := chi.URLParam(r, "id")
	if _, err := h.tools.GetByID(r.Context(), toolID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	var req UpsertReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	review, err := h.reviews.Upsert(r.Context(), toolID, user.ID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, store.ErrInvalidRating) {
			writeError(w, http.StatusBadRequest, err.Error(), "INVALID_RATING")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ReviewUpsertsTotal.Inc()
	writeJSON(w, http.StatusOK, toReviewResponse(review))
}

func toReviewResponse(r *store.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		ToolID:     r.ToolID,
		UserID:     r.UserID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
