package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	"github.com/noah-isme/sma-adp-dashboard/pkg/response"
	"github.com/noah-isme/sma-adp-dashboard/pkg/session"
)

// ContextUserKey is the gin context key storing the signed-in user.
const ContextUserKey = "currentUser"

type sessionReader interface {
	CurrentSession(ctx context.Context, store session.Store) (*models.AuthUser, error)
}

// RequireSession lets a request through only when the auth_user session is present. Browser
// navigations are redirected to loginPath; API calls get 401 with a redirect hint.
func RequireSession(auth sessionReader, provider session.Provider, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.CurrentSession(c.Request.Context(), provider.For(c))
		if err != nil {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, loginPath)
				c.Abort()
				return
			}
			response.Error(c, err, map[string]interface{}{"redirect": loginPath})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireSession.
func CurrentUser(c *gin.Context) *models.AuthUser {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.AuthUser)
	if !ok {
		return nil
	}
	return user
}

func wantsHTML(c *gin.Context) bool {
	return c.Request.Method == http.MethodGet && strings.Contains(c.GetHeader("Accept"), "text/html")
}
