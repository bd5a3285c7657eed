package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys shared by middlewares and handlers.
const (
	SessionUserKey = "username"
	SessionPicKey  = "profile_pic"
)

// CurrentUser returns the authenticated username from the session, or
// "" for an anonymous request.
func CurrentUser(c *gin.Context) string {
	if v, ok := sessions.Default(c).Get(SessionUserKey).(string); ok {
		return v
	}
	return ""
}

// RequireUser guards page endpoints: anonymous requests are redirected
// to the login page. The username is placed in the request context for
// downstream handlers.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := CurrentUser(c)
		if username == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(SessionUserKey, username)
		c.Next()
	}
}

// RequireUserJSON guards API endpoints: anonymous requests get a 403
// JSON error instead of a redirect.
func RequireUserJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := CurrentUser(c)
		if username == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set(SessionUserKey, username)
		c.Next()
	}
}
