package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulsrpg/db"
	"soulsrpg/similarity"
)

var engine *similarity.Engine

// InitSimilarity wires the recommendation engine to the shared database
// handle. Call once at startup, after db.InitDB.
func InitSimilarity() {
	engine = similarity.NewEngine(similarity.NewStore(db.DB))
}

// GetSimilarGames recommends games related to the given one. The source must
// exist and be active before the engine runs.
func GetSimilarGames(c *gin.Context) {
	game, ok := fetchGame(c)
	if !ok {
		return
	}

	results, err := engine.SimilarGames(game, similarity.DefaultLimit)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to find similar games", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(results),
		"basedOn": gin.H{
			"title":    game.Title,
			"category": game.Category,
			"subGenre": game.SubGenre,
			"tags":     game.Tags,
		},
		"data": results,
	})
}
