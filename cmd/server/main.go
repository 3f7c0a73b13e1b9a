// Package main is the entry point for the monster generator
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "monster-generator",
	Short: "Labyrinth Lord monster generator",
	Long: `Generates Labyrinth Lord monster stat blocks and serves them over a JSON
HTTP API and a gRPC MonsterService. The generate command runs the engine
offline without a server.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
