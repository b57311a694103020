// Package service sits between the transport layers (HTTP, CLI) and the
// gridgraph core: it bounds requests, assigns random streams, and records
// logs and metrics for every solve.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

var (
	// ErrGridTooLarge is returned when rows*cols exceeds the configured cap.
	ErrGridTooLarge = errors.New("service: grid exceeds cell limit")
	// ErrBatchTooLarge is returned when a batch holds more requests than allowed.
	ErrBatchTooLarge = errors.New("service: batch exceeds request limit")
)

// Request is one solve request as received from a client.
// Nil optional fields are drawn from the request's random stream.
type Request struct {
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	Start         *int   `json:"start,omitempty"`
	End           *int   `json:"end,omitempty"`
	ObstacleCount *int   `json:"obstacle_count,omitempty"`
	Obstacles     []int  `json:"obstacles,omitempty"`
	Seed          *int64 `json:"seed,omitempty"`
}

// Outcome is a gridgraph.Result plus the seed that produced it, so any
// random grid can be replayed.
type Outcome struct {
	*gridgraph.Result
	Seed int64 `json:"seed"`
}

// BatchItem holds either an Outcome or the reason the request was rejected.
type BatchItem struct {
	Outcome *Outcome `json:"result,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Solver runs gridgraph solves. It is safe for concurrent use; every call
// gets its own GridGraph and RandomSource.
type Solver struct {
	log      *logrus.Logger
	baseSeed int64
	maxCells int
	maxBatch int
	stream   atomic.Uint64
}

// NewSolver creates a Solver. Requests without a seed get one derived from
// baseSeed and a per-Solver sequence number.
func NewSolver(log *logrus.Logger, baseSeed int64, maxCells, maxBatch int) *Solver {
	return &Solver{log: log, baseSeed: baseSeed, maxCells: maxCells, maxBatch: maxBatch}
}

// IsInvalidInput reports whether err rejects the request itself rather than
// signalling a server-side failure.
func IsInvalidInput(err error) bool {
	return gridgraph.KindOf(err) == gridgraph.KindInvalidDimensions ||
		errors.Is(err, ErrGridTooLarge) ||
		errors.Is(err, ErrBatchTooLarge)
}

// Solve resolves and solves one request. Blocked endpoints and missing
// paths are reported in Outcome.Failure with a nil error.
func (s *Solver) Solve(ctx context.Context, req Request) (*Outcome, error) {
	return s.solve(ctx, req, s.seedFor(req))
}

// SolveBatch solves reqs concurrently and returns one item per request, in
// request order. Invalid requests are reported per item; only cancellation
// or an internal failure aborts the whole batch.
func (s *Solver) SolveBatch(ctx context.Context, reqs []Request) ([]BatchItem, error) {
	if len(reqs) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(reqs), s.maxBatch)
	}
	metrics.BatchSize.Observe(float64(len(reqs)))

	// Seeds are assigned up front so item i always gets stream i of this batch.
	seeds := make([]int64, len(reqs))
	for i, req := range reqs {
		seeds[i] = s.seedFor(req)
	}

	items := make([]BatchItem, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range reqs {
		i := i
		g.Go(func() error {
			out, err := s.solve(gctx, reqs[i], seeds[i])
			if err != nil {
				if IsInvalidInput(err) {
					items[i].Error = err.Error()
					return nil
				}
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			items[i].Outcome = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Solver) seedFor(req Request) int64 {
	if req.Seed != nil {
		return *req.Seed
	}

	return gridgraph.DeriveSeed(s.baseSeed, s.stream.Add(1))
}

func (s *Solver) solve(ctx context.Context, req Request, seed int64) (*Outcome, error) {
	fields := logrus.Fields{"rows": req.Rows, "cols": req.Cols, "seed": seed}

	if req.Rows > 0 && req.Cols > 0 && int64(req.Rows)*int64(req.Cols) > int64(s.maxCells) {
		metrics.SolvesTotal.WithLabelValues("invalid").Inc()
		s.log.WithFields(fields).Warn("grid exceeds cell limit")
		return nil, fmt.Errorf("%w: %d×%d > %d cells", ErrGridTooLarge, req.Rows, req.Cols, s.maxCells)
	}

	start := time.Now()
	res, err := gridgraph.Solve(gridgraph.Config{
		Rows:          req.Rows,
		Cols:          req.Cols,
		Start:         req.Start,
		End:           req.End,
		ObstacleCount: req.ObstacleCount,
		Obstacles:     req.Obstacles,
	}, gridgraph.NewRandomSource(seed), bfs.WithContext(ctx))
	metrics.SolveDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if IsInvalidInput(err) {
			metrics.SolvesTotal.WithLabelValues("invalid").Inc()
			s.log.WithFields(fields).WithError(err).Warn("invalid solve request")
		} else {
			metrics.SolvesTotal.WithLabelValues("error").Inc()
			s.log.WithFields(fields).WithError(err).Error("solve failed")
		}
		return nil, err
	}

	outcome := "solved"
	if !res.Solved() {
		outcome = string(res.Failure)
	}
	metrics.SolvesTotal.WithLabelValues(outcome).Inc()
	metrics.VisitedCells.Observe(float64(res.Visited))
	if res.Solved() {
		metrics.PathHops.Observe(float64(res.Hops))
	}

	fields["outcome"] = outcome
	fields["hops"] = res.Hops
	fields["visited"] = res.Visited
	if res.Failure == gridgraph.KindNoPathFound {
		fields["clearance"] = res.Clearance
	}
	s.log.WithFields(fields).Info("solve")

	return &Outcome{Result: res, Seed: seed}, nil
}
