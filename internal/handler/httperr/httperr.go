// Package httperr defines the public error payload. Every error surface,
// handlers, middleware and the panic recovery, writes the same flat shape:
// {"error": "<message>"}.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// Abort writes the public payload and stops the handler chain. A non-nil
// err is recorded on the context so the error middleware can log the cause
// without leaking it to the client.
func Abort(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}
	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
