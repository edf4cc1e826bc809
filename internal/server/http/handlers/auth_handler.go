package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/server/http/dto"
	"github.com/polkiloo/atelier/internal/server/http/middleware"
	"github.com/polkiloo/atelier/internal/usecase"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade    AuthFacade
	cookieTTL time.Duration
}

// NewAuthHandler creates AuthHandler instance. Issued tokens are also set as
// a cookie living for cookieTTL.
func NewAuthHandler(facade AuthFacade, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{facade: facade, cookieTTL: cookieTTL}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.facade.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "User registered successfully")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.EmailOrPhone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token, int(h.cookieTTL.Seconds()))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, token, err := h.facade.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Success: true,
		Message: "Admin login successful",
		Token:   token,
		Admin:   dto.NewUserResponse(admin),
	})
}
