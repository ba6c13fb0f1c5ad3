package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soulsrpg/db"
	"soulsrpg/models"
)

// GetStats aggregates catalog statistics. The five aggregate queries are
// independent, so they run in parallel and the handler waits for all of them.
func GetStats(c *gin.Context) {
	var (
		totalGames    int64
		featuredGames int64
		byCategory    []models.CategoryCount
		bySubGenre    []models.SubGenreCount
		topRated      []models.TopRatedGame
	)

	active := func() *gorm.DB {
		return db.DB.Model(&models.Game{}).Where("is_active = ?", true)
	}

	errs := make([]error, 5)
	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		errs[0] = active().Count(&totalGames).Error
	}()

	go func() {
		defer wg.Done()
		errs[1] = active().Where("featured = ?", true).Count(&featuredGames).Error
	}()

	go func() {
		defer wg.Done()
		errs[2] = active().
			Select("category, COUNT(*) as count").
			Group("category").
			Scan(&byCategory).Error
	}()

	go func() {
		defer wg.Done()
		errs[3] = active().
			Select("sub_genre, COUNT(*) as count").
			Where("sub_genre <> ''").
			Group("sub_genre").
			Scan(&bySubGenre).Error
	}()

	go func() {
		defer wg.Done()
		errs[4] = active().
			Select("id, title, rating, category, sub_genre").
			Order("rating DESC").
			Limit(5).
			Scan(&topRated).Error
	}()

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to compute statistics", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalGames":    totalGames,
			"featuredGames": featuredGames,
			"byCategory":    byCategory,
			"bySubGenre":    bySubGenre,
			"topRated":      topRated,
		},
	})
}
