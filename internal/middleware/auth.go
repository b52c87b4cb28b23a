package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estetify/clinic-admin/internal/auth"
	"github.com/estetify/clinic-admin/internal/config"
	"github.com/estetify/clinic-admin/internal/httperr"
)

const (
	ContextUserID  = "userID"
	ContextTokenID = "tokenID"
)

func AuthMiddleware(cfg *config.Config, store auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "Unauthenticated.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "Unauthenticated.")
			c.Abort()
			return
		}

		userID, jti, err := auth.ParseToken(parts[1], cfg.JWTSecret)
		if err != nil {
			httperr.Unauthorized(c, "Unauthenticated.")
			c.Abort()
			return
		}

		// token revogado (logout) não é mais aceito, mesmo com assinatura válida
		ok, err := store.Exists(c.Request.Context(), userID, jti)
		if err != nil || !ok {
			httperr.Unauthorized(c, "Unauthenticated.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextTokenID, jti)

		c.Next()
	}
}
