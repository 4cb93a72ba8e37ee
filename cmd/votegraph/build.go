package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LuizVenosa/GraficoCameraSite/internal/config"
	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/ingest"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/pipeline"
	"github.com/LuizVenosa/GraficoCameraSite/internal/storage"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	votes      string
	parties    string
	output     string
	jsonl      string
	paramsFile string
	threshold  float64
	topK       int
	seed       int64
}

func newBuildCmd() *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compute the similarity graph and export it as node-link JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.LoadParams(opts.paramsFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				params.Threshold = opts.threshold
			}
			if cmd.Flags().Changed("top-k") {
				params.TopK = opts.topK
			}
			if cmd.Flags().Changed("seed") {
				params.Layout.Seed = opts.seed
			}
			return runBuild(withDefaults(opts, cfg), params)
		},
	}

	cmd.Flags().StringVar(&opts.votes, "votes", "", "Votes pivot CSV (default from VOTEGRAPH_VOTES)")
	cmd.Flags().StringVar(&opts.parties, "parties", "", "Party metadata CSV (default from VOTEGRAPH_PARTIES)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Node-link JSON output (default from VOTEGRAPH_OUTPUT)")
	cmd.Flags().StringVar(&opts.jsonl, "jsonl", "", "Also write nodes and links as JSON lines to this file")
	cmd.Flags().StringVar(&opts.paramsFile, "params", "", "YAML file with pipeline parameters")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", 0, "Minimum similarity for an edge (exclusive)")
	cmd.Flags().IntVar(&opts.topK, "top-k", 0, "Edges each node may select")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Layout random seed")
	return cmd
}

func withDefaults(opts buildOptions, cfg config.Config) buildOptions {
	if opts.votes == "" {
		opts.votes = cfg.VotesPath
	}
	if opts.parties == "" {
		opts.parties = cfg.PartiesPath
	}
	if opts.output == "" {
		opts.output = cfg.OutputPath
	}
	return opts
}

func runBuild(opts buildOptions, params pipeline.Params) error {
	start := time.Now()

	votes, err := ingest.LoadVotes(opts.votes)
	if err != nil {
		return err
	}

	parties, err := ingest.LoadParties(opts.parties, ingest.DefaultPartyColumns())
	if err != nil {
		return err
	}
	if parties.Lenient {
		logger.Warn("Party metadata loaded leniently", "path", opts.parties, "skipped", parties.Skipped)
	}

	g, err := pipeline.Run(votes, parties.Table, params)
	if err != nil {
		return err
	}

	if err := storage.Export(g, opts.output); err != nil {
		return err
	}
	if opts.jsonl != "" {
		if err := writeJSONL(g, opts.jsonl); err != nil {
			return err
		}
	}

	logger.Info("Graph exported", "path", opts.output, "nodes", g.Len(), "links", len(g.Edges()),
		"took", time.Since(start).Round(time.Millisecond))
	return nil
}

func writeJSONL(g *graph.Graph, path string) error {
	doc, err := g.Document()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &storage.IOError{Op: "create", Path: path, Err: err}
	}
	emitter := storage.NewJSONLEmitter(f)
	if err := storage.EmitDocument(emitter, doc); err != nil {
		emitter.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return emitter.Close()
}
