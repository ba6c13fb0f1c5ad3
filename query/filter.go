// Package query turns the optional filter parameters of the catalog API into
// a GORM predicate scope and a sort order. Parsing is pure so the decision
// rules can be tested without a database.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Filter holds the parsed filter parameters. Zero values mean "absent": an
// absent parameter contributes nothing to the predicate.
type Filter struct {
	Category  string
	SubGenre  string
	Platform  string
	MinRating *float64
	MaxRating *float64
	Featured  *bool
	SortBy    string
}

// ParseFilter reads the supported parameters from a query string. Category
// and subGenre are lowercased to match stored values. Unparsable numeric or
// boolean values are reported as errors rather than silently dropped.
func ParseFilter(values url.Values) (*Filter, error) {
	f := &Filter{
		Category: strings.ToLower(values.Get("category")),
		SubGenre: strings.ToLower(values.Get("subGenre")),
		Platform: values.Get("platform"),
		SortBy:   values.Get("sortBy"),
	}

	var err error
	if f.MinRating, err = parseRating(values, "minRating"); err != nil {
		return nil, err
	}
	if f.MaxRating, err = parseRating(values, "maxRating"); err != nil {
		return nil, err
	}

	if raw := values.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("featured must be a boolean, got %q", raw)
		}
		f.Featured = &featured
	}

	return f, nil
}

func parseRating(values url.Values, key string) (*float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", key, raw)
	}
	return &rating, nil
}

// Scope applies the predicate: always scoped to active games, then the
// logical AND of exactly the supplied conditions. Rating bounds are
// inclusive on both ends.
func (f *Filter) Scope(db *gorm.DB) *gorm.DB {
	db = db.Where("is_active = ?", true)
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.SubGenre != "" {
		db = db.Where("sub_genre = ?", f.SubGenre)
	}
	if f.Platform != "" {
		db = db.Where("? = ANY(platforms)", f.Platform)
	}
	if f.MinRating != nil {
		db = db.Where("rating >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		db = db.Where("rating <= ?", *f.MaxRating)
	}
	if f.Featured != nil {
		db = db.Where("featured = ?", *f.Featured)
	}
	return db
}

// Order maps sortBy to a SQL order clause. Anything unrecognized falls back
// to newest first, same as an absent sortBy.
func (f *Filter) Order() string {
	switch f.SortBy {
	case "rating":
		return "rating DESC"
	case "title":
		return "title ASC"
	case "releaseDate":
		return "release_date DESC"
	default:
		return "created_at DESC"
	}
}

// Applied reports the parameters that were actually supplied, for echoing
// back in the filter response.
func (f *Filter) Applied() map[string]any {
	applied := map[string]any{}
	if f.Category != "" {
		applied["category"] = f.Category
	}
	if f.SubGenre != "" {
		applied["subGenre"] = f.SubGenre
	}
	if f.Platform != "" {
		applied["platform"] = f.Platform
	}
	if f.MinRating != nil {
		applied["minRating"] = *f.MinRating
	}
	if f.MaxRating != nil {
		applied["maxRating"] = *f.MaxRating
	}
	if f.Featured != nil {
		applied["featured"] = *f.Featured
	}
	if f.SortBy != "" {
		applied["sortBy"] = f.SortBy
	}
	return applied
}
