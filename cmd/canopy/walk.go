package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/internal/logging"
	"github.com/canopyhq/canopy/pkg/adapters/file"
	"github.com/canopyhq/canopy/pkg/adapters/rest"
	"github.com/canopyhq/canopy/pkg/content"
	"github.com/spf13/cobra"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk a content tree and print accepted node paths",
	Long:  `Runs a depth-first traversal over the repository (local YAML tree or remote node server) and prints the path of every accepted node. Accept and recurse type lists, depth and node limits mirror the library defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repoPath, _ := cmd.Flags().GetString("repo")
		url, _ := cmd.Flags().GetString("url")
		acceptTypes, _ := cmd.Flags().GetStringSlice("accept")
		recurseTypes, _ := cmd.Flags().GetStringSlice("recurse")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		maxNodes, _ := cmd.Flags().GetInt("max-nodes")
		showDenied, _ := cmd.Flags().GetBool("denied")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		b := canopy.New(canopy.WithLogger(logger)).
			SetCallback(func(_ context.Context, n content.Node, _ any) error {
				fmt.Printf("%s  (%s)\n", n.Path(), n.PrimaryType())
				return nil
			})

		if len(acceptTypes) > 0 {
			b.SetAcceptTypes(acceptTypes...)
		}
		if len(recurseTypes) > 0 {
			b.SetRecurseTypes(recurseTypes...)
		}
		if cmd.Flags().Changed("max-depth") {
			b.SetMaxDepth(maxDepth)
		}
		if maxNodes > 0 {
			b.SetMaxNodes(maxNodes)
		}
		if showDenied {
			b.SetDenyCallback(func(_ context.Context, n content.Node, _ any) error {
				fmt.Printf("%s  (%s) [denied]\n", n.Path(), n.PrimaryType())
				return nil
			})
		}

		walk, err := b.Build()
		if err != nil {
			return fmt.Errorf("invalid walk configuration: %w", err)
		}

		ctx := cmd.Context()
		var root content.Node
		if url != "" {
			root, err = rest.NewClient(url, rest.WithClientLogger(logger)).Node(ctx, "/")
			if err != nil {
				return fmt.Errorf("failed to fetch remote root: %w", err)
			}
		} else {
			src, err := file.Load(repoPath)
			if err != nil {
				return err
			}
			root = src.Root()
		}

		if err := walk.Traverse(ctx, root, nil); err != nil {
			logger.Error("walk failed", "error", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	walkCmd.Flags().String("url", "", "Base URL of a remote node server (overrides --repo)")
	walkCmd.Flags().StringSlice("accept", nil, "Primary types to accept (default: page,article)")
	walkCmd.Flags().StringSlice("recurse", nil, "Primary types to descend into (default: site-root,page,archive,folder)")
	walkCmd.Flags().Int("max-depth", 0, "Maximum recursion depth (unset: unlimited)")
	walkCmd.Flags().Int("max-nodes", 0, "Maximum accepted nodes (0: unlimited)")
	walkCmd.Flags().Bool("denied", false, "Also print nodes that were visited but not accepted")
	rootCmd.AddCommand(walkCmd)
}
