package models

// Category is the coarse classification of a game. The set is closed:
// anything outside it is rejected at input validation time.
type Category string

const (
	CategoryActionRPG Category = "action-rpg"
	CategoryJRPG      Category = "jrpg"
	CategoryCRPG      Category = "crpg"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryActionRPG, CategoryJRPG, CategoryCRPG:
		return true
	}
	return false
}

// SubGenre is the finer classification within a category. Empty means the
// game has no sub-genre.
type SubGenre string

const (
	SubGenreSoulsLike      SubGenre = "souls-like"
	SubGenreMetroidvania   SubGenre = "metroidvania"
	SubGenreOpenWorld      SubGenre = "open-world"
	SubGenreHackAndSlash   SubGenre = "hack-and-slash"
	SubGenreTurnBased      SubGenre = "turn-based"
	SubGenreTactical       SubGenre = "tactical"
	SubGenreDungeonCrawler SubGenre = "dungeon-crawler"
	SubGenreMonsterHunter  SubGenre = "monster-hunter"
	SubGenreStoryDriven    SubGenre = "story-driven"
	SubGenreClassic        SubGenre = "classic"
	SubGenreModern         SubGenre = "modern"
	SubGenreIsometric      SubGenre = "isometric"
	SubGenreNarrative      SubGenre = "narrative"
)

func (s SubGenre) Valid() bool {
	switch s {
	case SubGenreSoulsLike, SubGenreMetroidvania, SubGenreOpenWorld,
		SubGenreHackAndSlash, SubGenreTurnBased, SubGenreTactical,
		SubGenreDungeonCrawler, SubGenreMonsterHunter, SubGenreStoryDriven,
		SubGenreClassic, SubGenreModern, SubGenreIsometric, SubGenreNarrative:
		return true
	}
	return false
}

// Platform is one of the systems a game ships on.
type Platform string

const (
	PlatformPC             Platform = "PC"
	PlatformPlayStation    Platform = "PlayStation"
	PlatformXbox           Platform = "Xbox"
	PlatformNintendoSwitch Platform = "Nintendo Switch"
	PlatformMobile         Platform = "Mobile"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformPC, PlatformPlayStation, PlatformXbox, PlatformNintendoSwitch, PlatformMobile:
		return true
	}
	return false
}
