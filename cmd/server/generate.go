package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster"
)

// offlineSeparator divides stat blocks in text output
const offlineSeparator = "\n\n----------------------------------------\n\n"

var generateOpts struct {
	challengeRating string
	monsterType     string
	environment     string
	count           int
	algorithm       string
	complexity      string
	treasure        bool
	lair            bool
	format          string
	bestiaryPath    string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate monsters offline",
	Long: `Run the generator in-process and print the stat blocks, either in the
clipboard text layout or as JSON. No server or redis is needed.

  generate --cr 3 --type undead --count 2
  generate --complexity complex --treasure --lair --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, cmd.OutOrStdout())
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateOpts.challengeRating, "cr", "any", "challenge rating (1-5, 6+, or any)")
	f.StringVar(&generateOpts.monsterType, "type", "any", "monster type")
	f.StringVar(&generateOpts.environment, "environment", "any", "environment")
	f.IntVar(&generateOpts.count, "count", 1, "number of monsters")
	f.StringVar(&generateOpts.algorithm, "algorithm", "balanced", "balanced, template-based or random")
	f.StringVar(&generateOpts.complexity, "complexity", "", "simple, moderate or complex")
	f.BoolVar(&generateOpts.treasure, "treasure", false, "include treasure")
	f.BoolVar(&generateOpts.lair, "lair", false, "include a lair")
	f.StringVar(&generateOpts.format, "format", string(entities.ExportFormatText), "output format: text or json")
	f.StringVar(&generateOpts.bestiaryPath, "bestiary", "", "bestiary YAML file (defaults to the built-in tables)")
}

func runGenerate(cmd *cobra.Command, out io.Writer) error {
	format := entities.ExportFormat(strings.ToLower(generateOpts.format))
	if format != entities.ExportFormatText && format != entities.ExportFormatJSON {
		return errors.InvalidArgumentf("unsupported format %q", generateOpts.format)
	}

	service, err := newMonsterService(generateOpts.bestiaryPath, max(generateOpts.count, monster.DefaultMaxCount), events.NewBus())
	if err != nil {
		return err
	}

	result, err := service.Generate(cmd.Context(), &monster.GenerateInput{
		ChallengeRating: generateOpts.challengeRating,
		Type:            generateOpts.monsterType,
		Environment:     generateOpts.environment,
		Count:           generateOpts.count,
		Algorithm:       generateOpts.algorithm,
		Complexity:      generateOpts.complexity,
		IncludeTreasure: generateOpts.treasure,
		IncludeLair:     generateOpts.lair,
	})
	if err != nil {
		return err
	}

	return printMonsters(out, format, result.Monsters)
}

func printMonsters(out io.Writer, format entities.ExportFormat, monsters []*entities.Monster) error {
	if format == entities.ExportFormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"monsters": monsters})
	}

	blocks := make([]string, 0, len(monsters))
	for _, m := range monsters {
		blocks = append(blocks, m.ClipboardText())
	}
	_, err := fmt.Fprintln(out, strings.Join(blocks, offlineSeparator))
	return err
}
