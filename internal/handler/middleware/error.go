package middleware

import (
	"log/slog"
	"net/http"

	"driveshare/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs causes recorded via httperr.Abort and backstops
// handlers that returned without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Newest error first; older ones are superseded.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				slog.Debug("request aborted",
					"path", c.Request.URL.Path, "status", resp.Status, "error", err.Err.Error())
				if !c.Writer.Written() {
					c.JSON(resp.Status, resp)
				}
				return
			}
		}
		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{
					Status: http.StatusInternalServerError,
					Error:  "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
