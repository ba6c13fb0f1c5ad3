package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"soulsrpg/db"
	"soulsrpg/models"
)

// likeEscaper neutralizes LIKE metacharacters in the search term so a query
// like "%" matches titles containing a literal percent sign, not every title.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchGames matches active games by title.
func SearchGames(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		fail(c, http.StatusBadRequest, "Please provide a search term", nil)
		return
	}

	var games []models.Game
	err := db.DB.Where("is_active = ?", true).
		Where("title ILIKE ?", "%"+likeEscaper.Replace(q)+"%").
		Order("rating DESC").
		Find(&games).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(games),
		"data":    games,
	})
}
