package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulsrpg/db"
	"soulsrpg/models"
	"soulsrpg/query"
)

// FilterGames composes the supplied filter parameters into one query and
// echoes back which filters were applied.
func FilterGames(c *gin.Context) {
	filter, err := query.ParseFilter(c.Request.URL.Query())
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid filter parameters", err)
		return
	}

	var games []models.Game
	if err := filter.Scope(db.DB).Order(filter.Order()).Find(&games).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to filter games", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(games),
		"filters": filter.Applied(),
		"data":    games,
	})
}
