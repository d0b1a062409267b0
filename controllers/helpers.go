package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/utils"
)

// intParam reads a numeric path parameter, answering 400 when it is not
// an integer.
func intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("%s must be an integer, got %q", name, raw))
		return 0, false
	}
	return n, true
}
