package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONErrorDetails adds the underlying error text for payload-binding
// failures where the client needs to know which field was wrong.
func JSONErrorDetails(c *gin.Context, code int, message string, err error) {
	c.JSON(code, gin.H{"success": false, "error": message, "details": err.Error()})
}
