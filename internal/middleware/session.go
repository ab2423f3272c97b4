package middleware

import (
	"net/http"

	"dcreative-storefront/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie carries the signed shopper session token between requests.
const SessionCookie = "dcreative_session"

const sessionCookieMaxAge = 30 * 24 * 60 * 60

type SessionMiddleware struct {
	tokens *auth.TokenManager
}

func NewSessionMiddleware(tokens *auth.TokenManager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Session attaches a shopper session id to every request, minting a fresh
// one when the cookie is missing, expired or tampered with. A new session
// simply means an empty cart; it is never an error.
func (m *SessionMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil {
			if claims, err := m.tokens.Validate(token); err == nil {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		token, err := m.tokens.Issue(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			c.Abort()
			return
		}

		c.SetCookie(SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
		c.Set("session_id", sessionID)
		c.Next()
	}
}

// GetSessionID helper function to extract the session id from context
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get("session_id"); exists {
		return sessionID.(string)
	}
	return ""
}
