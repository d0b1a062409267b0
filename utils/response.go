package utils

import "github.com/gin-gonic/gin"

// Envelope is the body of every API response. Data is set on success,
// Error on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func JSONSuccess(c *gin.Context, code int, data any) {
	c.JSON(code, Envelope{Success: true, Data: data})
}

// JSONError aborts the handler chain so later middleware sees the failure
// status unchanged.
func JSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Error: message})
}
