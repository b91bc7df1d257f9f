package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WrongMethod rejects a request made with the wrong HTTP method, naming the
// method the URL is set up for. Every endpoint supports exactly one method.
func WrongMethod(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusBadRequest, fmt.Sprintf(
			"A %s request was received. This URL is set up for %s requests only",
			c.Request.Method, expected,
		))
	}
}
