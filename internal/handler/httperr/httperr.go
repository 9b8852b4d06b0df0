package httperr

import (
	"sauna-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error body both the public site and the ops panel parse:
// {"error":{"message":"..."}}.
type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: Message{Message: msg}}
}

// Write answers without an underlying error (unknown route, recovered panic).
func Write(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, New(status, msg))
}

// AbortWithError keeps err on the context for the request log; the client
// only ever sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := New(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
