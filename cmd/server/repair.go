package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/config"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/redis"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/monsters"
)

var repairDryRun bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Remove corrupted saved monsters and rebuild the collection index",
	Long: `Scan every saved monster in redis, delete entries that no longer decode,
and re-index the rest. Use --dry-run to only report what would change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		slog.SetDefault(cfg.NewLogger(os.Stderr))

		if cfg.RedisURL == "" {
			return errors.InvalidArgument("REDIS_URL is required for repair")
		}

		client, closeRedis, err := connectRedis(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer closeRedis()

		return runRepair(cmd, client, cmd.OutOrStdout())
	},
}

func init() {
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "report corrupted entries without deleting them")
}

func runRepair(cmd *cobra.Command, client redis.Client, out io.Writer) error {
	repo, err := monsters.NewRedis(&monsters.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	result, err := repo.Repair(cmd.Context(), monsters.RepairInput{DryRun: repairDryRun})
	if err != nil {
		return err
	}

	for _, key := range result.Corrupted {
		fmt.Fprintf(out, "corrupted: %s\n", key)
	}

	action := "removed"
	if repairDryRun {
		action = "would remove"
	}
	fmt.Fprintf(out, "checked %d saved monsters, indexed %d, %s %d\n",
		result.Checked, result.Indexed, action, len(result.Corrupted))
	return nil
}
