package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Canopy walks hierarchical content repositories",
	Long:  `Canopy configures and runs depth-first traversals over content trees: walk a local YAML repository or a remote node server, filter by primary type, and act on what matches.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("repo", "tree.yaml", "Path to the YAML tree definition")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
