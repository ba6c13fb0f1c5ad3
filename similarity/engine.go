// Package similarity recommends games related to a source game using a
// three-tier cascade: same sub-genre first, then same category with shared
// tags, then same category alone. Tiers run in order and each only fires
// while the result is still short of the requested limit.
package similarity

import (
	"soulsrpg/models"
)

// DefaultLimit is the number of similar games returned when the caller does
// not ask for a specific count.
const DefaultLimit = 4

// Store is the slice of the catalog the engine needs. Every method must
// return only active games, ordered by rating descending, capped at limit,
// and never any game whose id is in exclude.
type Store interface {
	BySubGenre(subGenre models.SubGenre, exclude []uint, limit int) ([]models.SimilarGame, error)
	ByCategoryWithTags(category models.Category, tags []string, exclude []uint, limit int) ([]models.SimilarGame, error)
	ByCategory(category models.Category, exclude []uint, limit int) ([]models.SimilarGame, error)
}

type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// SimilarGames returns up to limit games related to source, never the source
// itself and never the same game twice. The accumulator and exclusion set
// are threaded explicitly through the tiers; results keep tier order, with
// rating order only within a tier. The tiers depend on each other's
// exclusions and must stay sequential.
func (e *Engine) SimilarGames(source *models.Game, limit int) ([]models.SimilarGame, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	acc := make([]models.SimilarGame, 0, limit)

	// Tier 1: same sub-genre, when the source has one.
	if source.SubGenre != "" {
		matches, err := e.store.BySubGenre(source.SubGenre, excludeIDs(source.ID, acc), limit)
		if err != nil {
			return nil, err
		}
		acc = append(acc, matches...)
	}

	// Tier 2: same category with at least one shared tag.
	if len(acc) < limit && len(source.Tags) > 0 {
		matches, err := e.store.ByCategoryWithTags(source.Category, source.Tags, excludeIDs(source.ID, acc), limit-len(acc))
		if err != nil {
			return nil, err
		}
		acc = append(acc, matches...)
	}

	// Tier 3: same category, the catch-all.
	if len(acc) < limit {
		matches, err := e.store.ByCategory(source.Category, excludeIDs(source.ID, acc), limit-len(acc))
		if err != nil {
			return nil, err
		}
		acc = append(acc, matches...)
	}

	return acc, nil
}

// excludeIDs is the source id plus everything accumulated so far, recomputed
// before each tier so later tiers cannot repeat earlier picks.
func excludeIDs(sourceID uint, acc []models.SimilarGame) []uint {
	ids := make([]uint, 0, len(acc)+1)
	ids = append(ids, sourceID)
	for _, game := range acc {
		ids = append(ids, game.ID)
	}
	return ids
}
