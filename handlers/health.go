package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trimly/utils"
)

// Health reports the latest dependency health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
