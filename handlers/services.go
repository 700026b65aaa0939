package handlers

import (
	"errors"
	"net/http"
	"strconv"

	serviceRepo "allservices/database/repository/service"
	"allservices/middleware"
	"allservices/services/catalog"
	"allservices/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the catalog over HTTP.
type ServiceHandler struct {
	Service catalog.CatalogService
}

// NewServiceHandler creates a new ServiceHandler instance.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Service: svc}
}

// catalogErrorStatus maps catalog errors onto HTTP status codes.
func catalogErrorStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrMissingFields),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, catalog.ErrInvalidPriceType):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrServiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreateService handles POST /api/services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var input catalog.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), middleware.ActorID(c), input)
	if err != nil {
		utils.JSONError(c, catalogErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Service created successfully",
		"service": created,
	})
}

// GetAllServices handles GET /api/services with optional filters.
func (h *ServiceHandler) GetAllServices(c *gin.Context) {
	filter := serviceRepo.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = f
		}
	}
	if v := c.Query("rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = f
		}
	}

	services, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, catalogErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetServicesByProvider handles GET /api/services/provider/:providerId.
func (h *ServiceHandler) GetServicesByProvider(c *gin.Context) {
	services, err := h.Service.ListByProvider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServicesByCategory handles GET /api/services/category/:category.
func (h *ServiceHandler) GetServicesByCategory(c *gin.Context) {
	services, err := h.Service.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// SearchServices handles GET /api/services/search?keyword=...
func (h *ServiceHandler) SearchServices(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		utils.JSONError(c, http.StatusBadRequest, "Please provide search keyword", "")
		return
	}

	services, err := h.Service.Search(c.Request.Context(), keyword)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error searching services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateService handles PUT /api/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var patch catalog.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), patch)
	if err != nil {
		utils.JSONError(c, catalogErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"service": updated,
	})
}

// DeleteService handles DELETE /api/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		utils.JSONError(c, catalogErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
