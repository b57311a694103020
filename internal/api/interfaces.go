package api

import (
	"context"

	"github.com/katalvlaran/gridpath/internal/service"
)

// PathSolver is the service surface the path handlers depend on.
type PathSolver interface {
	Solve(ctx context.Context, req service.Request) (*service.Outcome, error)
	SolveBatch(ctx context.Context, reqs []service.Request) ([]service.BatchItem, error)
}

var _ PathSolver = (*service.Solver)(nil)
