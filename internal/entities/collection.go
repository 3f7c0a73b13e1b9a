package entities

import "time"

// The official library is created the first time libraries are listed
const (
	OfficialLibraryID          = "official"
	OfficialLibraryName        = "Official Labyrinth Lord"
	OfficialLibraryDescription = "Core monsters from the Labyrinth Lord rulebook"
)

// AnonymousSharer is reported as the author of every share link
const AnonymousSharer = "Anonymous User"

// SavedMonster is a generated monster kept in the user's collection
type SavedMonster struct {
	ID        string    `json:"id"`
	LibraryID string    `json:"libraryId,omitempty"`
	Monster   *Monster  `json:"monster"`
	SavedAt   time.Time `json:"savedAt"`
}

// Library groups saved monsters
type Library struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsOfficial  bool      `json:"isOfficial"`
	MonsterIDs  []string  `json:"monsterIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Share is a link to a saved monster that stops resolving after ExpiresAt
type Share struct {
	ID        string    `json:"id"`
	MonsterID string    `json:"monsterId"`
	ShareType string    `json:"shareType"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	ViewCount int64     `json:"viewCount"`
}

// IsExpired reports whether the share is past its expiry at now
func (s *Share) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// UsageStats are the aggregate counters shown on the landing page
type UsageStats struct {
	TotalGenerated int64 `json:"totalGenerated"`
	TotalSaved     int64 `json:"totalSaved"`
	TotalShared    int64 `json:"totalShared"`
}
