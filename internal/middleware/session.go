package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/surajmeruva0786/DigiGov10/internal/auth"
	"github.com/surajmeruva0786/DigiGov10/internal/model"
)

// SessionKey is the gin context key holding the model.Session of the caller.
const SessionKey = "session"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return header[7:]
}

// Session attaches the caller's session to the context when a valid bearer
// token is present; anonymous requests pass through.
func Session(a *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if session, err := a.ParseToken(token); err == nil {
				c.Set(SessionKey, session)
			}
		}
		c.Next()
	}
}

// RequireRole aborts with 401 for missing/invalid tokens and 403 when the
// session role does not match.
func RequireRole(a *auth.Service, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		session, err := a.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if session.Role != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Set(SessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session attached to the context, if any.
func SessionFrom(c *gin.Context) (model.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return model.Session{}, false
	}
	session, ok := v.(model.Session)
	return session, ok
}
