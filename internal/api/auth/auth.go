package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gympoint/dashboard-service/internal/middleware"
	"github.com/gympoint/dashboard-service/internal/store/users"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	log    *zap.Logger
	users  *users.UsersRepository
	secret string
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	UserID  string    `json:"user_id"`
	Role    string    `json:"role"`
}

func NewAuthHandler(log *zap.Logger, users *users.UsersRepository, secret string) *AuthHandler {
	return &AuthHandler{log: log, users: users, secret: secret}
}

func (h *AuthHandler) Register(r *gin.Engine) {
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", h.login)
	}
}

func (h *AuthHandler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.log.Error("login lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.Issue(h.secret, user.ID, user.Role == "admin", tokenTTL)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Expires: time.Now().Add(tokenTTL),
		UserID:  user.ID,
		Role:    user.Role,
	})
}
