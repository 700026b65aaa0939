package handlers

import (
	"errors"
	"net/http"

	"allservices/middleware"
	"allservices/services/review"
	"allservices/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the Review Ledger over HTTP.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// reviewErrorStatus maps ledger errors onto HTTP status codes.
func reviewErrorStatus(err error) int {
	switch {
	case errors.Is(err, review.ErrMissingFields),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, review.ErrServiceMismatch),
		errors.Is(err, review.ErrAlreadyReviewed):
		return http.StatusBadRequest
	case errors.Is(err, review.ErrBookingNotFound),
		errors.Is(err, review.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, review.ErrNotAuthorized),
		errors.Is(err, review.ErrNotAuthor):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreateReview handles POST /api/reviews. On success the service and
// provider aggregates have already been recomputed.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input review.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		utils.JSONError(c, reviewErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  created,
	})
}

// GetServiceReviews handles GET /api/reviews/service/:serviceId.
func (h *ReviewHandler) GetServiceReviews(c *gin.Context) {
	reviews, err := h.Service.ListByService(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetProviderReviews handles GET /api/reviews/provider/:providerId.
func (h *ReviewHandler) GetProviderReviews(c *gin.Context) {
	reviews, err := h.Service.ListByProvider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReview handles GET /api/reviews/:id.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	rev, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, reviewErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, rev)
}

// UpdateReview handles PUT /api/reviews/:id.
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var patch review.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), patch)
	if err != nil {
		utils.JSONError(c, reviewErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  updated,
	})
}

// DeleteReview handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		utils.JSONError(c, reviewErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// MarkReviewHelpful handles POST /api/reviews/:id/helpful.
func (h *ReviewHandler) MarkReviewHelpful(c *gin.Context) {
	rev, err := h.Service.MarkHelpful(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, reviewErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Review marked helpful",
		"review":  rev,
	})
}
