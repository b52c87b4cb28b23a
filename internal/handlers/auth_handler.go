package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/estetify/clinic-admin/internal/auth"
	"github.com/estetify/clinic-admin/internal/config"
	"github.com/estetify/clinic-admin/internal/dto"
	"github.com/estetify/clinic-admin/internal/httperr"
	"github.com/estetify/clinic-admin/internal/middleware"
	"github.com/estetify/clinic-admin/internal/repository"
	"github.com/estetify/clinic-admin/internal/validators"
)

type AuthHandler struct {
	users  *repository.UserRepository
	store  auth.TokenStore
	config *config.Config
}

func NewAuthHandler(users *repository.UserRepository, store auth.TokenStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, store: store, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	errs := validators.Errors{}
	if req.Email == "" {
		errs.Add("email", "O campo E-mail é obrigatório.")
	} else if !validators.IsValidEmail(req.Email) {
		errs.Add("email", "O E-mail informado não é válido.")
	}
	if req.Password == "" {
		errs.Add("password", "O campo Senha é obrigatório.")
	} else if len(req.Password) < 6 {
		errs.Add("password", "A Senha deve ter no mínimo 6 caracteres.")
	}
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), repository.NormalizeEmail(req.Email))
	if err != nil {
		httperr.Internal(c, "Erro interno.")
		return
	}
	if user == nil {
		httperr.Unauthorized(c, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Invalid credentials")
		return
	}

	token, jti, err := auth.GenerateToken(user.ID, h.config.JWTSecret)
	if err != nil {
		httperr.Internal(c, "Erro ao gerar token.")
		return
	}

	if err := h.store.Save(c.Request.Context(), user.ID, jti, auth.TokenTTL); err != nil {
		httperr.Internal(c, "Erro ao registrar token.")
		return
	}

	view := dto.NewUserView(*user, h.config.AppURL)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         view.ID,
			"name":       view.Name,
			"email":      view.Email,
			"photo":      view.Photo,
			"created_at": view.CreatedAt,
			"updated_at": view.UpdatedAt,
		},
	})
}

// Logout revoga todos os tokens do usuário autenticado de uma vez.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.store.RevokeAll(c.Request.Context(), userID); err != nil {
		httperr.Internal(c, "Erro ao encerrar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me devolve o usuário autenticado (GET /api/user).
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		httperr.Internal(c, "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserView(*user, h.config.AppURL))
}
