package gridgraph_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func fixed(rows, cols, start, end int, obstacles ...int) gridgraph.Config {
	if obstacles == nil {
		obstacles = []int{}
	}

	return gridgraph.Config{
		Rows: rows, Cols: cols,
		Start: gridgraph.Int(start), End: gridgraph.Int(end),
		Obstacles: obstacles,
	}
}

func TestSolve_Open3x3(t *testing.T) {
	res, err := gridgraph.Solve(fixed(3, 3, 0, 8), nil)
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Equal(t, []int{0, 1, 2, 5, 8}, res.Path)
	assert.Equal(t, 4, res.Hops)
	assert.Equal(t, 9, res.Visited)
	assert.Equal(t, 12, res.Edges)
	assert.Equal(t, []int{}, res.Obstacles)
}

func TestSolve_InvalidConfig(t *testing.T) {
	res, err := gridgraph.Solve(gridgraph.Config{Rows: 0, Cols: 4}, nil)
	require.ErrorIs(t, err, gridgraph.ErrInvalidDimensions)
	assert.Nil(t, res)
}

func TestSolve_Failures(t *testing.T) {
	cases := []struct {
		name          string
		cfg           gridgraph.Config
		kind          gridgraph.FailureKind
		wantClearance int
	}{
		{"StartBlocked", fixed(3, 3, 0, 8, 0), gridgraph.KindStartBlocked, 0},
		{"EndBlocked", fixed(3, 3, 0, 8, 8), gridgraph.KindEndBlocked, 0},
		{"NoPath", fixed(1, 5, 0, 4, 2), gridgraph.KindNoPathFound, 1},
		{"TwoWalls", fixed(5, 1, 0, 4, 1, 3), gridgraph.KindNoPathFound, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := gridgraph.Solve(tc.cfg, nil)
			require.NoError(t, err)
			assert.False(t, res.Solved())
			assert.Equal(t, tc.kind, res.Failure)
			assert.Equal(t, []int{}, res.Path)
			assert.Equal(t, -1, res.Hops)
			assert.Equal(t, tc.wantClearance, res.Clearance)
		})
	}
}

func TestSolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gridgraph.Solve(fixed(4, 4, 0, 15), nil, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, gridgraph.KindNone, gridgraph.KindOf(err))
}

func TestSolve_DeterministicPerSeed(t *testing.T) {
	cfg := gridgraph.Config{Rows: 12, Cols: 9}
	a, err := gridgraph.Solve(cfg, gridgraph.NewRandomSource(2024))
	require.NoError(t, err)
	b, err := gridgraph.Solve(cfg, gridgraph.NewRandomSource(2024))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResult_BeforeTraverse(t *testing.T) {
	gg := mustGrid(t, 2, 2, 0, 3)
	_, err := gg.Result()
	require.ErrorIs(t, err, gridgraph.ErrNotTraversed)
}

func TestResult_JSON(t *testing.T) {
	res, err := gridgraph.Solve(fixed(2, 2, 0, 3), nil)
	require.NoError(t, err)
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"rows":2,"cols":2,"start":0,"end":3,"obstacles":[],"path":[0,1,3],"hops":2,"visited":4,"edges":4}`,
		string(raw))

	res, err = gridgraph.Solve(fixed(1, 3, 0, 2, 1), nil)
	require.NoError(t, err)
	raw, err = json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"rows":1,"cols":3,"start":0,"end":2,"obstacles":[1],"path":[],"hops":-1,"visited":1,"edges":0,"failure":"no_path_found","clearance":1}`,
		string(raw))
}
