package handlers

import (
	"errors"
	"net/http"

	"allservices/middleware"
	"allservices/services/user"
	"allservices/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, login and profile endpoints.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func userErrorStatus(err error) int {
	switch {
	case errors.Is(err, user.ErrMissingFields), errors.Is(err, user.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, userErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		utils.JSONError(c, userErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// GetProfile handles GET /api/auth/profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	u, err := h.Service.GetByID(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		utils.JSONError(c, userErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var patch user.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.UpdateProfile(c.Request.Context(), middleware.ActorID(c), patch)
	if err != nil {
		utils.JSONError(c, userErrorStatus(err), err.Error(), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

// GetProviders handles GET /api/auth/providers.
func (h *AuthHandler) GetProviders(c *gin.Context) {
	providers, err := h.Service.ListProviders(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, providers)
}

// GetProvider handles GET /api/auth/providers/:id.
func (h *AuthHandler) GetProvider(c *gin.Context) {
	provider, err := h.Service.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, userErrorStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, provider)
}
