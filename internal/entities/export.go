package entities

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ExportFormat selects how a monster is rendered for export
type ExportFormat string

// Export formats
const (
	ExportFormatText ExportFormat = "text"
	ExportFormatJSON ExportFormat = "json"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ClipboardText renders the stat block in the plain-text clipboard layout
func (m *Monster) ClipboardText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", m.Name, m.Type)
	fmt.Fprintf(&b, "AC: %d, HD: %s, HP: %d\n", m.Stats.ArmorClass, m.Stats.HitDice, m.Stats.HitPoints)
	fmt.Fprintf(&b, "Move: %s, Attacks: %s\n", m.Stats.Movement, m.Stats.Attacks)
	fmt.Fprintf(&b, "Damage: %s, Save: %s\n", m.Stats.Damage, m.Stats.Save)
	fmt.Fprintf(&b, "Morale: %d, XP: %d\n", m.Stats.Morale, m.Stats.Experience)
	b.WriteString("\n")
	b.WriteString(m.Description)
	b.WriteString("\n\n")
	b.WriteString("Special Abilities: ")
	b.WriteString(strings.Join(m.SpecialAbilities, ", "))

	return b.String()
}

// ExportFilename is the download name for a JSON export
func (m *Monster) ExportFilename() string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(m.Name), "_") + ".json"
}

// ExportJSON renders the monster as indented JSON
func (m *Monster) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
