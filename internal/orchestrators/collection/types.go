package collection

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// SaveMonsterInput defines the request for saving a monster. An empty
// LibraryID saves the monster without filing it in a library.
type SaveMonsterInput struct {
	Monster   *entities.Monster
	LibraryID string
}

// SaveMonsterOutput defines the response for saving a monster
type SaveMonsterOutput struct {
	Saved *entities.SavedMonster
}

// GetMonsterInput defines the request for getting a saved monster
type GetMonsterInput struct {
	ID string
}

// GetMonsterOutput defines the response for getting a saved monster
type GetMonsterOutput struct {
	Saved *entities.SavedMonster
}

// ListSavedInput defines the request for listing the collection. A zero
// Limit lists everything.
type ListSavedInput struct {
	Offset int
	Limit  int
}

// ListSavedOutput defines the response for listing the collection
type ListSavedOutput struct {
	Monsters   []*entities.SavedMonster
	TotalCount int
	Libraries  []*entities.Library
}

// DeleteMonsterInput defines the request for deleting a saved monster
type DeleteMonsterInput struct {
	ID string
}

// DeleteMonsterOutput defines the response for deleting a saved monster
type DeleteMonsterOutput struct{}

// ListLibrariesInput defines the request for listing libraries
type ListLibrariesInput struct{}

// ListLibrariesOutput defines the response for listing libraries
type ListLibrariesOutput struct {
	Libraries []*entities.Library
}

// ExportMonsterInput defines the request for exporting a saved monster
type ExportMonsterInput struct {
	ID     string
	Format string
}

// ExportMonsterOutput defines the response for exporting a saved monster
type ExportMonsterOutput struct {
	Format      entities.ExportFormat
	Content     []byte
	ContentType string
	// Filename is set for downloadable formats
	Filename string
}
