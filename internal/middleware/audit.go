package middleware

import (
	"net/http"

	"github.com/ChaosDragon01/messaging-Wapp/internal/config"
	"github.com/ChaosDragon01/messaging-Wapp/internal/geo"
	"github.com/ChaosDragon01/messaging-Wapp/internal/models"
	"github.com/ChaosDragon01/messaging-Wapp/internal/store"

	"github.com/gin-gonic/gin"
)

// Audit appends an access-log entry after each successful request on
// the routes it is attached to. The session user is captured before
// the handler runs, so logout still logs the user who signed out.
// The geolocation lookup is synchronous and blocks the request; its
// failures degrade to placeholder fields inside the Locator.
func Audit(logs *store.AccessLogStore, locator geo.Locator, cfg config.GeoConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := CurrentUser(c)

		c.Next()

		// Only requests from signed-in users are audited.
		if username == "" {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ip := c.ClientIP()
		if cfg.UseTestIP {
			ip = cfg.TestIP
		}
		loc := locator.Lookup(ip)

		entry := models.AccessLogEntry{
			Timestamp: models.Now(),
			Method:    c.Request.Method,
			Endpoint:  c.Request.URL.Path,
			IP:        ip,
			City:      loc.City,
			State:     loc.Region,
			Country:   loc.Country,
			Zip:       loc.Postal,
			LocalTime: loc.Timezone,
		}
		// Audit failures never fail the request.
		_ = logs.Append(entry)
	}
}
