package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	challengeRating string
	monsterType     string
	environment     string
	count           int
	complexity      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate monsters on the server",
	Long: `Call MonsterService/Generate and print the JSON response. Examples:

  client generate --cr 2 --type beast
  client generate --count 3 --complexity complex`,
	Args: cobra.NoArgs,
	RunE: generate,
}

func init() {
	generateCmd.Flags().StringVar(&challengeRating, "cr", "any", "challenge rating")
	generateCmd.Flags().StringVar(&monsterType, "type", "any", "monster type")
	generateCmd.Flags().StringVar(&environment, "environment", "any", "environment")
	generateCmd.Flags().IntVar(&count, "count", 1, "number of monsters")
	generateCmd.Flags().StringVar(&complexity, "complexity", "", "simple, moderate or complex")
}

func generate(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createMonsterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"filters": map[string]any{
			"challengeRating": challengeRating,
			"type":            monsterType,
			"environment":     environment,
			"count":           count,
		},
		"complexity":      complexity,
		"includeTreasure": complexity != "",
		"includeLair":     complexity != "",
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate monsters: %w", err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
