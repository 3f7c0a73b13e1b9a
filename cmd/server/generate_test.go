package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/testutils"
)

func runGenerateCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"generate"}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommandJSON(t *testing.T) {
	out, err := runGenerateCommand(t,
		"--cr", "4", "--type", "dragon", "--environment", "mountain",
		"--count", "3", "--algorithm", "balanced", "--complexity", "",
		"--treasure=false", "--lair=false", "--format", "json", "--bestiary", "")
	require.NoError(t, err)

	var resp struct {
		Monsters []*entities.Monster `json:"monsters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Monsters, 3)
	for _, m := range resp.Monsters {
		assert.Equal(t, entities.TypeDragon, m.Type)
		assert.Nil(t, m.Treasure)
		assert.Nil(t, m.Lair)
	}
}

func TestGenerateCommandText(t *testing.T) {
	out, err := runGenerateCommand(t,
		"--cr", "any", "--type", "any", "--environment", "any",
		"--count", "2", "--algorithm", "random", "--complexity", "",
		"--treasure=false", "--lair=false", "--format", "text", "--bestiary", "")
	require.NoError(t, err)

	blocks := strings.Split(strings.TrimSpace(out), strings.TrimSpace(offlineSeparator))
	assert.Len(t, blocks, 2)
	assert.Contains(t, out, "Special Abilities: ")
}

func TestGenerateCommandRejectsUnknownFormat(t *testing.T) {
	_, err := runGenerateCommand(t, "--format", "xml")
	require.Error(t, err)
}

func TestPrintMonstersText(t *testing.T) {
	var out bytes.Buffer
	m := testutils.CreateTestMonster()

	require.NoError(t, printMonsters(&out, entities.ExportFormatText, []*entities.Monster{m}))
	assert.Equal(t, m.ClipboardText()+"\n", out.String())
}
