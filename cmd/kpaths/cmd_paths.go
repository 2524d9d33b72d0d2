package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kpaths/config"
	"github.com/katalvlaran/kpaths/progress"
)

var (
	pathsConfig   string
	pathsJSON     bool
	pathsMetrics  bool
	pathsParallel int
)

// pathsCmd runs every query of a config file.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Run the queries of a config file",
	Long: `Run every query of a YAML (.yaml, .yml) or TOML (.toml) config file.

Queries run concurrently over one shared snapshot of the graph. A query
whose start or goal is missing is reported and does not stop the others.
When the file sets a timeout, queries still running at the deadline stop
and report the paths found so far.

Examples:
  kpaths paths --config roads.yaml
  kpaths paths -c roads.toml --json
  kpaths paths -c roads.yaml --metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.Load(pathsConfig)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		metrics, err := progress.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}

		results, err := runQueries(cmd.Context(), f, runOptions{
			Parallel: pathsParallel,
			Logger:   log.StandardLogger(),
			Metrics:  metrics,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if pathsJSON {
			err = writeJSON(out, results)
		} else {
			err = writeText(out, results)
		}
		if err != nil {
			return err
		}
		if pathsMetrics {
			return writeMetrics(out, reg)
		}

		return nil
	},
}

func init() {
	pathsCmd.Flags().StringVarP(&pathsConfig, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "print results as JSON")
	pathsCmd.Flags().BoolVar(&pathsMetrics, "metrics", false, "print prometheus metrics after the results")
	pathsCmd.Flags().IntVarP(&pathsParallel, "parallel", "p", 4, "maximum number of queries running at once")
	_ = pathsCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(pathsCmd)
}
