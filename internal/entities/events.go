package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the in-process bus
const (
	EventMonsterGenerated = "monster.generated"
	EventMonsterSaved     = "monster.saved"
	EventMonsterShared    = "monster.shared"
)

// EntityTypeMonster is reported by MonsterEntity.GetType
const EntityTypeMonster = "monster"

var _ core.Entity = (*MonsterEntity)(nil)

// MonsterEntity adapts a monster to the toolkit entity interface so it can be
// the source of bus events. ID is empty for monsters that were never saved.
type MonsterEntity struct {
	ID      string
	Monster *Monster
}

// GetID returns the saved id, or the monster name when unsaved
func (e *MonsterEntity) GetID() string {
	if e.ID != "" {
		return e.ID
	}
	if e.Monster != nil {
		return e.Monster.Name
	}
	return ""
}

// GetType returns the entity type
func (e *MonsterEntity) GetType() string {
	return EntityTypeMonster
}

// NewMonsterEvent builds a bus event sourced from a monster. Extra context
// values are attached as given.
func NewMonsterEvent(eventType, id string, m *Monster, context map[string]any) events.Event {
	event := events.NewGameEvent(eventType, &MonsterEntity{ID: id, Monster: m}, nil)
	for k, v := range context {
		event.Context().Set(k, v)
	}
	return event
}

// MonsterFromEvent returns the monster an event was built from, if any
func MonsterFromEvent(e events.Event) (*MonsterEntity, bool) {
	entity, ok := e.Source().(*MonsterEntity)
	return entity, ok
}
