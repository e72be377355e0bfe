package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/energeist/dockerized-climbunity/utils"
)

const (
	ContextUserID  = "userId"
	ContextIsAdmin = "isAdmin"
)

// tokenFromRequest pulls the access token from the Authorization header,
// falling back to the access_token cookie for server-rendered pages.
func tokenFromRequest(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware requires a valid access token. HTML page requests are
// bounced to the login page with a next parameter; API requests get a 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			if acceptsHTML(c) {
				c.Redirect(http.StatusFound, "/login?next="+c.Request.URL.Path)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := utils.ValidateJWT(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuth records the viewer's identity when a valid token is present
// but never rejects the request. Public pages use it to decide which
// affordances to render.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := tokenFromRequest(c); tokenStr != "" {
			if claims, err := utils.ValidateJWT(tokenStr); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextIsAdmin, claims.IsAdmin)
			}
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the current request carries a verified
// identity, from either middleware above.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := c.Get(ContextUserID)
	return ok
}

func acceptsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
