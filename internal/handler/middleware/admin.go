package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"sauna-booking/internal/handler/httperr"
	"sauna-booking/internal/pkg/config"
	"sauna-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const AdminTokenHeader = "X-Admin-Token"

var errAdminUnauthorized = errs.New("admin token missing or invalid")

type AdminMiddleware struct {
	token []byte
}

func NewAdminMiddleware(cfg config.AdminConfig) *AdminMiddleware {
	if cfg.Token == "" {
		slog.Warn("OPS_ADMIN_TOKEN is not set, admin endpoints will reject every request")
	}
	return &AdminMiddleware{token: []byte(cfg.Token)}
}

// RequireAdmin compares the header in constant time. An unset server token
// denies everything, including an empty header.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authorized(c.GetHeader(AdminTokenHeader)) {
			slog.Warn("Admin request rejected", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminUnauthorized, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}

func (m *AdminMiddleware) authorized(presented string) bool {
	if len(m.token) == 0 || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), m.token) == 1
}
