package middleware

import (
	"log/slog"
	"net/http"

	"sauna-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error when a handler recorded one
// without writing a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error"))
	}
}

func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.Write(c, http.StatusNotFound, "Not found")
	}
}

func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.Write(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)
				httperr.Write(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}
