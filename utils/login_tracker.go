// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track user login events (in-memory, volatile)
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoginEvent is one recorded login. Events live in process memory only and
// exist for operator visibility (logs, future admin surface).
type LoginEvent struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	LoggedInAt time.Time `json:"logged_in_at"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	DeviceType string    `json:"device_type"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
}

// Keep a bounded window so the log cannot grow without limit.
const maxLoginEvents = 1000

var (
	loginMu     sync.Mutex
	loginEvents []LoginEvent
)

// LogLoginEvent records a login event in the in-memory event log.
func LogLoginEvent(c *gin.Context, userID uuid.UUID) {
	userAgent := c.GetHeader("User-Agent")

	event := LoginEvent{
		ID:         uuid.New().String(),
		UserID:     userID.String(),
		LoggedInAt: time.Now(),
		IPAddress:  GetClientIP(c),
		UserAgent:  userAgent,
		DeviceType: parseDeviceType(userAgent),
		Browser:    parseBrowser(userAgent),
		OS:         parseOS(userAgent),
	}

	loginMu.Lock()
	loginEvents = append(loginEvents, event)
	if len(loginEvents) > maxLoginEvents {
		loginEvents = loginEvents[len(loginEvents)-maxLoginEvents:]
	}
	loginMu.Unlock()

	log.Printf("✅ Login event logged for user: %s from IP: %s", event.UserID, event.IPAddress)
}

// RecentLoginEvents returns the latest events for a user, newest first.
func RecentLoginEvents(userID string, limit int) []LoginEvent {
	loginMu.Lock()
	defer loginMu.Unlock()

	out := make([]LoginEvent, 0, limit)
	for i := len(loginEvents) - 1; i >= 0 && len(out) < limit; i-- {
		if loginEvents[i].UserID == userID {
			out = append(out, loginEvents[i])
		}
	}
	return out
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	return "desktop"
}

// parseBrowser extracts browser name from user agent
func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "edg") {
		return "Edge"
	}
	if strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg") {
		return "Chrome"
	}
	if strings.Contains(ua, "firefox") {
		return "Firefox"
	}
	if strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome") {
		return "Safari"
	}
	return "Other"
}

// parseOS extracts operating system from user agent
func parseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "windows") {
		return "Windows"
	}
	if strings.Contains(ua, "mac os") {
		return "macOS"
	}
	if strings.Contains(ua, "linux") {
		return "Linux"
	}
	if strings.Contains(ua, "android") {
		return "Android"
	}
	if strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") {
		return "iOS"
	}
	return "Other"
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	// Try X-Forwarded-For first (if behind proxy)
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	// Try X-Real-IP
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	// Fallback to RemoteAddr
	return c.ClientIP()
}
