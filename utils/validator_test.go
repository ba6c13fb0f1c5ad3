package utils

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulsrpg/models"
)

func validInput() models.GameInput {
	return models.GameInput{
		Title:       "Elden Ring",
		Category:    "action-rpg",
		SubGenre:    "souls-like",
		Description: "An open-world action RPG.",
		Image:       "/images/elden-ring.jpg",
		Developer:   "FromSoftware",
		ReleaseDate: time.Date(2022, 2, 25, 0, 0, 0, 0, time.UTC),
		Platforms:   []string{"PC", "PlayStation", "Xbox"},
		Rating:      9.5,
		Tags:        []string{"open-world", "difficult"},
	}
}

func failedFields(t *testing.T, err error) map[string]bool {
	t.Helper()
	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok, "expected validator.ValidationErrors, got %T", err)
	fields := make(map[string]bool)
	for _, e := range validationErrors {
		fields[e.Field()] = true
	}
	return fields
}

func TestValidInputPasses(t *testing.T) {
	in := validInput()
	assert.NoError(t, ValidateStruct(&in))
}

func TestSubGenreIsOptional(t *testing.T) {
	in := validInput()
	in.SubGenre = ""
	assert.NoError(t, ValidateStruct(&in))
}

func TestTooManyTags(t *testing.T) {
	in := validInput()
	in.Tags = []string{"a", "b", "c", "d", "e", "f", "g"}

	err := ValidateStruct(&in)
	require.Error(t, err)
	assert.Contains(t, failedFields(t, err), "Tags")
}

func TestUnknownCategory(t *testing.T) {
	in := validInput()
	in.Category = "mmorpg"

	err := ValidateStruct(&in)
	require.Error(t, err)
	assert.Contains(t, failedFields(t, err), "Category")
}

func TestUnknownSubGenre(t *testing.T) {
	in := validInput()
	in.SubGenre = "roguelike"

	err := ValidateStruct(&in)
	require.Error(t, err)
	assert.Contains(t, failedFields(t, err), "SubGenre")
}

func TestUnknownPlatform(t *testing.T) {
	in := validInput()
	in.Platforms = []string{"PC", "Stadia"}

	err := ValidateStruct(&in)
	require.Error(t, err)
	assert.Contains(t, failedFields(t, err), "Platforms[1]")
}

func TestRatingOutOfRange(t *testing.T) {
	in := validInput()
	in.Rating = 10.5

	err := ValidateStruct(&in)
	require.Error(t, err)
	assert.Contains(t, failedFields(t, err), "Rating")
}

func TestOfficialWebsiteMustBeHTTP(t *testing.T) {
	in := validInput()
	in.OfficialWebsite = "ftp://example.com"

	err := ValidateStruct(&in)
	require.Error(t, err)
	assert.Contains(t, failedFields(t, err), "OfficialWebsite")

	in.OfficialWebsite = "https://example.com"
	assert.NoError(t, ValidateStruct(&in))
}

func TestMissingRequiredFields(t *testing.T) {
	err := ValidateStruct(&models.GameInput{})
	require.Error(t, err)

	fields := failedFields(t, err)
	for _, want := range []string{"Title", "Category", "Description", "Image", "Developer", "ReleaseDate"} {
		assert.Contains(t, fields, want)
	}
}
