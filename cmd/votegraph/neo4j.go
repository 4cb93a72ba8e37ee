package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/LuizVenosa/GraficoCameraSite/internal/loader"
	"github.com/LuizVenosa/GraficoCameraSite/internal/query"
	"github.com/LuizVenosa/GraficoCameraSite/internal/storage"
	"github.com/spf13/cobra"
)

func connect(ctx context.Context) (*query.Neo4jProvider, error) {
	if cfg.Neo4jURI == "" {
		return nil, errors.New("NEO4J_URI environment variable is not set")
	}
	return query.NewNeo4jProvider(ctx, cfg)
}

func newPublishCmd() *cobra.Command {
	var input string
	var wipe bool
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Load the exported graph into Neo4j",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				input = cfg.OutputPath
			}
			doc, err := storage.LoadNodeLink(input)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			provider, err := connect(ctx)
			if err != nil {
				return err
			}
			defer provider.Close()

			return loader.NewNeo4jLoader(provider.Driver(), cfg.Neo4jDatabase).Publish(ctx, doc, wipe)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Node-link JSON to publish (default from VOTEGRAPH_OUTPUT)")
	cmd.Flags().BoolVar(&wipe, "wipe", false, "Delete previously published legislators first")
	return cmd
}

func newNeighborsCmd() *cobra.Command {
	var target string
	var limit int
	cmd := &cobra.Command{
		Use:   "neighbors",
		Short: "Print the published neighbors of an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return errors.New("--target is required")
			}
			ctx := cmd.Context()
			provider, err := connect(ctx)
			if err != nil {
				return err
			}
			defer provider.Close()

			return printNeighbors(ctx, provider, target, limit)
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "Entity identifier")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum neighbors to print")
	return cmd
}

func printNeighbors(ctx context.Context, p query.GraphProvider, target string, limit int) error {
	result, err := p.GetNeighbors(ctx, target, limit)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
