package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"soulsrpg/db"
	"soulsrpg/models"
)

// GetGamesByCategory lists active games in one category, best rated first.
// Unknown categories simply match nothing.
func GetGamesByCategory(c *gin.Context) {
	category := strings.ToLower(c.Param("category"))

	var games []models.Game
	err := db.DB.Where("is_active = ?", true).
		Where("category = ?", category).
		Order("rating DESC").
		Find(&games).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch games by category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"count":    len(games),
		"data":     games,
	})
}

// GetGamesBySubGenre lists active games in one sub-genre, best rated first.
func GetGamesBySubGenre(c *gin.Context) {
	subGenre := strings.ToLower(c.Param("subGenre"))

	var games []models.Game
	err := db.DB.Where("is_active = ?", true).
		Where("sub_genre = ?", subGenre).
		Order("rating DESC").
		Find(&games).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch games by sub-genre", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"subGenre": subGenre,
		"count":    len(games),
		"data":     games,
	})
}

// GetFeaturedGames lists active featured games, best rated first.
func GetFeaturedGames(c *gin.Context) {
	var games []models.Game
	err := db.DB.Where("is_active = ?", true).
		Where("featured = ?", true).
		Order("rating DESC").
		Find(&games).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch featured games", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(games),
		"data":    games,
	})
}
