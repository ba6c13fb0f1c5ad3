package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// fail sends an error envelope. The raw error detail is included when
// present; callers pick the message so internals never leak through 404s.
func fail(c *gin.Context, status int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

// parseID parses a path id. Malformed ids are treated exactly like unknown
// ones so the error cannot reveal the id format.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// Welcome answers the root route with version and endpoint hints.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Souls RPG API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"games":    "/api/games",
			"gameById": "/api/games/:id",
			"similar":  "/api/games/:id/similar",
			"search":   "/api/games/search?q=...",
			"filter":   "/api/games/filter",
			"stats":    "/api/games/stats",
		},
	})
}

// NotFound is the fallback for unmatched routes.
func NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, fmt.Sprintf("Route %s not found", c.Request.URL.Path), nil)
}

// Recovery turns an unhandled panic into a 500 envelope.
func Recovery(c *gin.Context, recovered any) {
	fail(c, http.StatusInternalServerError, "Internal server error", fmt.Errorf("%v", recovered))
}
