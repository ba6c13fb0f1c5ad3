package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// MaxTags is the hard cap on tags per game.
const MaxTags = 6

type Game struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"size:100;not null" json:"title"`
	Category         Category       `gorm:"size:20;not null;index:idx_games_category_sub_genre" json:"category"`
	SubGenre         SubGenre       `gorm:"size:30;index:idx_games_category_sub_genre" json:"subGenre,omitempty"`
	Description      string         `gorm:"size:1000;not null" json:"description"`
	ShortDescription string         `gorm:"size:200" json:"shortDescription"`
	Image            string         `gorm:"not null" json:"image"`
	CoverImage       string         `json:"coverImage,omitempty"`
	Developer        string         `gorm:"not null" json:"developer"`
	Publisher        string         `json:"publisher,omitempty"`
	ReleaseDate      time.Time      `gorm:"not null;index" json:"releaseDate"`
	Platforms        pq.StringArray `gorm:"type:text[]" json:"platforms"`
	Rating           float64        `gorm:"default:0;index" json:"rating"`
	GameplayDuration float64        `json:"gameplayDuration,omitempty"`
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags"`
	OfficialWebsite  string         `json:"officialWebsite,omitempty"`
	Featured         bool           `gorm:"default:false;index" json:"featured"`
	IsActive         bool           `gorm:"default:true" json:"isActive"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// GameInput is the request body for creating or fully updating a game.
type GameInput struct {
	Title            string    `json:"title" validate:"required,max=100"`
	Category         string    `json:"category" validate:"required,gamecategory"`
	SubGenre         string    `json:"subGenre" validate:"omitempty,subgenre"`
	Description      string    `json:"description" validate:"required,max=1000"`
	ShortDescription string    `json:"shortDescription" validate:"omitempty,max=200"`
	Image            string    `json:"image" validate:"required"`
	CoverImage       string    `json:"coverImage"`
	Developer        string    `json:"developer" validate:"required"`
	Publisher        string    `json:"publisher"`
	ReleaseDate      time.Time `json:"releaseDate" validate:"required"`
	Platforms        []string  `json:"platforms" validate:"dive,platform"`
	Rating           float64   `json:"rating" validate:"gte=0,lte=10"`
	GameplayDuration float64   `json:"gameplayDuration" validate:"gte=0"`
	Tags             []string  `json:"tags" validate:"max=6"`
	OfficialWebsite  string    `json:"officialWebsite" validate:"omitempty,http_url"`
	Featured         bool      `json:"featured"`
}

// Normalize trims free-text fields and lowercases the enum fields so
// validation and storage always see canonical values.
func (in *GameInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	in.SubGenre = strings.ToLower(strings.TrimSpace(in.SubGenre))
	in.Developer = strings.TrimSpace(in.Developer)
	in.Publisher = strings.TrimSpace(in.Publisher)
}

// ToGame builds the entity from validated input. ShortDescription is derived
// here when the caller did not supply one, so the default is fixed at
// construction time rather than computed on read.
func (in GameInput) ToGame() Game {
	short := in.ShortDescription
	if short == "" {
		short = shortDescriptionFrom(in.Description)
	}
	return Game{
		Title:            in.Title,
		Category:         Category(in.Category),
		SubGenre:         SubGenre(in.SubGenre),
		Description:      in.Description,
		ShortDescription: short,
		Image:            in.Image,
		CoverImage:       in.CoverImage,
		Developer:        in.Developer,
		Publisher:        in.Publisher,
		ReleaseDate:      in.ReleaseDate,
		Platforms:        pq.StringArray(in.Platforms),
		Rating:           in.Rating,
		GameplayDuration: in.GameplayDuration,
		Tags:             pq.StringArray(in.Tags),
		OfficialWebsite:  in.OfficialWebsite,
		Featured:         in.Featured,
		IsActive:         true,
	}
}

// Apply overwrites the mutable fields of an existing game with validated
// input. ID, IsActive and timestamps are untouched.
func (in GameInput) Apply(game *Game) {
	updated := in.ToGame()
	updated.ID = game.ID
	updated.IsActive = game.IsActive
	updated.CreatedAt = game.CreatedAt
	*game = updated
}

func shortDescriptionFrom(description string) string {
	runes := []rune(description)
	if len(runes) > 150 {
		runes = runes[:150]
	}
	return string(runes) + "..."
}

// SimilarGame is the reduced projection returned by the similarity engine.
type SimilarGame struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Category    Category  `json:"category"`
	SubGenre    SubGenre  `json:"subGenre,omitempty"`
	ReleaseDate time.Time `json:"releaseDate"`
}

// TopRatedGame is the reduced projection used by the stats endpoint.
type TopRatedGame struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Rating   float64  `json:"rating"`
	Category Category `json:"category"`
	SubGenre SubGenre `json:"subGenre,omitempty"`
}

// CategoryCount is one row of the per-category aggregation.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int64    `json:"count"`
}

// SubGenreCount is one row of the per-sub-genre aggregation.
type SubGenreCount struct {
	SubGenre SubGenre `json:"subGenre"`
	Count    int64    `json:"count"`
}
