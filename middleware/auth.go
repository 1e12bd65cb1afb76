package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/auth"
	"socialnet/models"
	"socialnet/store"
)

const memberKey = "member"

// RequireAuth resolves the session_id cookie to a Member and stores it in
// the gin context. A missing cookie, a token that fails verification and a
// token whose member no longer exists all end the request with 401.
func RequireAuth(sessions *auth.Manager, members store.MemberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		memberID, err := sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			return
		}

		member, err := members.GetByID(c.Request.Context(), memberID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			return
		}

		c.Set(memberKey, member)
		c.Next()
	}
}

// CurrentMember returns the authenticated member set by RequireAuth.
func CurrentMember(c *gin.Context) *models.Member {
	if v, ok := c.Get(memberKey); ok {
		if m, ok := v.(*models.Member); ok {
			return m
		}
	}
	return nil
}
