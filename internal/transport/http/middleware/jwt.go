package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postboard/internal/app"
	"postboard/internal/model"
	"postboard/internal/pkg/jwtutil"
	"postboard/internal/transport/http/response"
)

const (
	ContextUserKey   = "current_user"
	ContextUserIDKey = "user_id"
)

// AuthJWT validates the bearer token and resolves it to a stored user before
// any protected handler runs.
func AuthJWT(secret string, authService *app.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, http.StatusUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwtutil.ErrTokenExpired) {
				msg = "token expired"
			}
			response.Error(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		user, err := authService.GetUserByID(claims.UserID)
		if err != nil {
			if errors.Is(err, app.ErrUserNotFound) {
				response.Error(c, http.StatusUnauthorized, "user not found")
			} else {
				response.Error(c, http.StatusInternalServerError, "resolve user failed")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// CurrentUser reads the user attached by AuthJWT.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
