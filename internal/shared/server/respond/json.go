package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes body as a JSON response with the given status.
func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// OK is the 200 shorthand used by read endpoints.
func OK(c *gin.Context, body any) {
	JSON(c, http.StatusOK, body)
}
