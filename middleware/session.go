package middleware

import (
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "session_id"
	storeKey      = "sessionStore"
)

// SessionMiddleware resolves the caller's storefront session. An existing
// ID is accepted from the X-Session-ID header or the session cookie; new
// callers get a fresh ID, echoed back in both. The session's store is
// placed on the request context.
func SessionMiddleware(sessions *store.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			if cookieID, err := c.Cookie(sessionCookie); err == nil {
				sessionID = cookieID
			}
		}
		if sessionID == "" {
			sessionID = sessions.NewSessionID()
			c.SetCookie(sessionCookie, sessionID, 0, "/", "", false, true)
		}

		c.Header(sessionHeader, sessionID)
		c.Set(storeKey, sessions.Get(sessionID))
		c.Next()
	}
}

// GetSessionStore returns the session store placed by SessionMiddleware.
func GetSessionStore(c *gin.Context) (*store.Store, bool) {
	v, exists := c.Get(storeKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*store.Store)
	return s, ok
}
