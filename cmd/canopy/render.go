package main

import (
	"fmt"
	"os"

	"github.com/canopyhq/canopy/pkg/adapters/file"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Render a node's content",
	Long:  `Looks up a node by path in the repository and renders its markdown body. Output is styled when stdout is a terminal, raw otherwise.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoPath, _ := cmd.Flags().GetString("repo")
		nodePath := args[0]

		src, err := file.Load(repoPath)
		if err != nil {
			return err
		}
		rec, err := src.Record(cmd.Context(), nodePath)
		if err != nil {
			return err
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(rec.Content)
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Detect light/dark background
		)
		if err != nil {
			return fmt.Errorf("failed to initialize renderer: %w", err)
		}
		out, err := r.Render(rec.Content)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", nodePath, err)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
