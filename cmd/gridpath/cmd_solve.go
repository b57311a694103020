package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/service"
)

// Limits for one-shot solves; the server takes its own from config.
const (
	cliMaxCells = 25_000_000
	cliMaxBatch = 1
)

type solveFlags struct {
	rows, cols    int
	start, end    int
	obstacles     int
	obstacleCells []int
	seed          int64
	logLevel      string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build one grid, find a shortest path and print the result as JSON",
		Long: "Build one grid, find a shortest path and print the result as JSON.\n" +
			"Unset --start, --end and --obstacles are drawn from the seeded random stream.\n" +
			"Blocked endpoints and missing paths are reported in the \"failure\" field.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := f.request(cmd)

			log, err := logging.New(f.logLevel, "text", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			// Without --seed every run draws a fresh grid; the seed used is
			// printed so it can be replayed.
			solver := service.NewSolver(log, time.Now().UnixNano(), cliMaxCells, cliMaxBatch)

			out, err := solver.Solve(context.Background(), req)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVar(&f.rows, "rows", 0, "Number of grid rows (required)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "Number of grid columns (required)")
	cmd.Flags().IntVar(&f.start, "start", 0, "Start cell index (default: random)")
	cmd.Flags().IntVar(&f.end, "end", 0, "End cell index (default: random)")
	cmd.Flags().IntVar(&f.obstacles, "obstacles", 0, "Number of random obstacles (default: random)")
	cmd.Flags().IntSliceVar(&f.obstacleCells, "obstacle-cells", nil, "Explicit obstacle cell indices; overrides --obstacles")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (default: time-based)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level for diagnostics on stderr")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")

	return cmd
}

// request maps flags to a service.Request; flags the user did not set stay nil.
func (f *solveFlags) request(cmd *cobra.Command) service.Request {
	req := service.Request{Rows: f.rows, Cols: f.cols}
	flags := cmd.Flags()
	if flags.Changed("start") {
		req.Start = &f.start
	}
	if flags.Changed("end") {
		req.End = &f.end
	}
	if flags.Changed("obstacles") {
		req.ObstacleCount = &f.obstacles
	}
	if flags.Changed("obstacle-cells") {
		req.Obstacles = append([]int{}, f.obstacleCells...)
	}
	if flags.Changed("seed") {
		req.Seed = &f.seed
	}

	return req
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
