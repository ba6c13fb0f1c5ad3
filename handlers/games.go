package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soulsrpg/db"
	"soulsrpg/models"
	"soulsrpg/monitoring"
	"soulsrpg/utils"
)

// GetGames lists all active games, newest first.
func GetGames(c *gin.Context) {
	var games []models.Game
	err := db.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(games),
		"data":    games,
	})
}

// CreateGame validates the request body and persists a new game.
func CreateGame(c *gin.Context) {
	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	input.Normalize()
	if err := utils.ValidateStruct(&input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	game := input.ToGame()
	if err := db.DB.Create(&game).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create game", err)
		return
	}

	refreshActiveGames()
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": game})
}

// GetGameByID fetches one active game. Malformed ids, unknown ids and
// inactive games all answer 404.
func GetGameByID(c *gin.Context) {
	game, ok := fetchGame(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": game})
}

// UpdateGame replaces the mutable fields of a game with a validated full
// document. Last write wins.
func UpdateGame(c *gin.Context) {
	game, ok := fetchGame(c)
	if !ok {
		return
	}

	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	input.Normalize()
	if err := utils.ValidateStruct(&input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	input.Apply(game)
	if err := db.DB.Save(game).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update game", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": game})
}

// DeleteGame soft-deletes a game. The record stays in the store, it just
// disappears from every public read.
func DeleteGame(c *gin.Context) {
	game, ok := fetchGame(c)
	if !ok {
		return
	}

	game.IsActive = false
	if err := db.DB.Save(game).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete game", err)
		return
	}

	refreshActiveGames()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Game deactivated"})
}

// fetchGame resolves the :id path parameter to an active game, writing the
// error response itself when it cannot.
func fetchGame(c *gin.Context) (*models.Game, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Game not found", nil)
		return nil, false
	}

	var game models.Game
	if err := db.DB.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Game not found", nil)
		} else {
			fail(c, http.StatusInternalServerError, "Failed to fetch game", err)
		}
		return nil, false
	}

	if !game.IsActive {
		fail(c, http.StatusNotFound, "Game is no longer available", nil)
		return nil, false
	}

	return &game, true
}

func refreshActiveGames() {
	var total int64
	if err := db.DB.Model(&models.Game{}).Where("is_active = ?", true).Count(&total).Error; err == nil {
		monitoring.ActiveGames.Set(float64(total))
	}
}
