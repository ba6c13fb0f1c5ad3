package similarity

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	"soulsrpg/models"
)

const similarGameColumns = "id, title, image, rating, category, sub_genre, release_date"

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by the games table.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) BySubGenre(subGenre models.SubGenre, exclude []uint, limit int) ([]models.SimilarGame, error) {
	return find(s.subGenreQuery(subGenre, exclude, limit))
}

func (s *gormStore) ByCategoryWithTags(category models.Category, tags []string, exclude []uint, limit int) ([]models.SimilarGame, error) {
	return find(s.categoryWithTagsQuery(category, tags, exclude, limit))
}

func (s *gormStore) ByCategory(category models.Category, exclude []uint, limit int) ([]models.SimilarGame, error) {
	return find(s.categoryQuery(category, exclude, limit))
}

func (s *gormStore) subGenreQuery(subGenre models.SubGenre, exclude []uint, limit int) *gorm.DB {
	return s.candidates(exclude, limit).Where("sub_genre = ?", subGenre)
}

func (s *gormStore) categoryWithTagsQuery(category models.Category, tags []string, exclude []uint, limit int) *gorm.DB {
	return s.candidates(exclude, limit).
		Where("category = ?", category).
		Where("tags && ?", pq.Array(tags))
}

func (s *gormStore) categoryQuery(category models.Category, exclude []uint, limit int) *gorm.DB {
	return s.candidates(exclude, limit).Where("category = ?", category)
}

// candidates carries the clauses every tier shares: active games only, the
// exclusion set, rating order, the cap, and the reduced projection.
func (s *gormStore) candidates(exclude []uint, limit int) *gorm.DB {
	return s.db.Model(&models.Game{}).
		Select(similarGameColumns).
		Where("is_active = ?", true).
		Where("id NOT IN ?", exclude).
		Order("rating DESC").
		Limit(limit)
}

func find(q *gorm.DB) ([]models.SimilarGame, error) {
	var games []models.SimilarGame
	if err := q.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
