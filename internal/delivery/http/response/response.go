package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every failure: {"error": "..."}.
// The frontend keys off this field, so it stays flat.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends a failure response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// OK sends the payload as-is with a 200; discover and profile endpoints own
// their full body shape.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(200, payload)
}
