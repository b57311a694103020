package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/api"
	"github.com/katalvlaran/gridpath/internal/middleware"
	"github.com/katalvlaran/gridpath/internal/service"
)

type outcomeBody struct {
	Path      []int  `json:"path"`
	Hops      int    `json:"hops"`
	Failure   string `json:"failure"`
	Clearance int    `json:"clearance"`
	Seed      int64  `json:"seed"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))

	return v
}

func TestPaths_Solved(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestRouter(), http.MethodPost, "/api/v1/paths",
		`{"rows":3,"cols":3,"start":0,"end":8,"obstacles":[]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[outcomeBody](t, w.Body.Bytes())
	assert.Equal(t, []int{0, 1, 2, 5, 8}, body.Path)
	assert.Equal(t, 4, body.Hops)
	assert.Empty(t, body.Failure)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestPaths_FailuresAre200(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		body    string
		failure string
	}{
		{"StartBlocked", `{"rows":3,"cols":3,"start":0,"end":8,"obstacles":[0]}`, "start_blocked"},
		{"EndBlocked", `{"rows":3,"cols":3,"start":0,"end":8,"obstacles":[8]}`, "end_blocked"},
		{"NoPath", `{"rows":1,"cols":5,"start":0,"end":4,"obstacles":[2]}`, "no_path_found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(newTestRouter(), http.MethodPost, "/api/v1/paths", tc.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			body := decode[outcomeBody](t, w.Body.Bytes())
			assert.Equal(t, tc.failure, body.Failure)
			assert.Equal(t, -1, body.Hops)
			assert.Empty(t, body.Path)
		})
	}
}

func TestPaths_SeedReplays(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	first := decode[outcomeBody](t, doRequest(r, http.MethodPost, "/api/v1/paths", `{"rows":8,"cols":8,"seed":99}`).Body.Bytes())
	second := decode[outcomeBody](t, doRequest(r, http.MethodPost, "/api/v1/paths", `{"rows":8,"cols":8,"seed":99}`).Body.Bytes())
	assert.Equal(t, int64(99), first.Seed)
	assert.Equal(t, first, second)
}

func TestPaths_BadRequests(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		code string
	}{
		{"MalformedJSON", `{"rows":`, api.ErrCodeInvalidRequest},
		{"WrongType", `{"rows":"three","cols":3}`, api.ErrCodeInvalidRequest},
		{"ZeroRows", `{"rows":0,"cols":3}`, api.ErrCodeValidationError},
		{"StartOutOfRange", `{"rows":2,"cols":2,"start":4}`, api.ErrCodeValidationError},
		{"TooManyObstacles", `{"rows":2,"cols":2,"obstacle_count":4}`, api.ErrCodeValidationError},
		{"TooLarge", `{"rows":30,"cols":30}`, api.ErrCodeLimitExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(newTestRouter(), http.MethodPost, "/api/v1/paths", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			body := decode[errorBody](t, w.Body.Bytes())
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body.RequestID)
		})
	}
}

func TestPaths_Batch(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestRouter(), http.MethodPost, "/api/v1/paths/batch", `{"requests":[
		{"rows":2,"cols":2,"start":0,"end":3,"obstacles":[]},
		{"rows":0,"cols":2},
		{"rows":1,"cols":3,"start":0,"end":2,"obstacles":[1]}
	]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Results []struct {
			Result *outcomeBody `json:"result"`
			Error  string       `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 3)

	require.NotNil(t, body.Results[0].Result)
	assert.Equal(t, []int{0, 1, 3}, body.Results[0].Result.Path)
	assert.Nil(t, body.Results[1].Result)
	assert.Contains(t, body.Results[1].Error, "invalid dimensions")
	require.NotNil(t, body.Results[2].Result)
	assert.Equal(t, "no_path_found", body.Results[2].Result.Failure)
	assert.Equal(t, 1, body.Results[2].Result.Clearance)
}

func TestPaths_BatchLimits(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := doRequest(r, http.MethodPost, "/api/v1/paths/batch", `{"requests":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api.ErrCodeValidationError, decode[errorBody](t, w.Body.Bytes()).Code)

	w = doRequest(r, http.MethodPost, "/api/v1/paths/batch",
		`{"requests":[{"rows":1,"cols":1},{"rows":1,"cols":1},{"rows":1,"cols":1},{"rows":1,"cols":1},{"rows":1,"cols":1}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api.ErrCodeLimitExceeded, decode[errorBody](t, w.Body.Bytes()).Code)
}

// failingSolver returns err from every call.
type failingSolver struct{ err error }

func (f failingSolver) Solve(context.Context, service.Request) (*service.Outcome, error) {
	return nil, f.err
}

func (f failingSolver) SolveBatch(context.Context, []service.Request) ([]service.BatchItem, error) {
	return nil, f.err
}

func TestPaths_InternalError(t *testing.T) {
	t.Parallel()

	h := api.NewPathHandler(failingSolver{err: errors.New("boom")}, testLogger())
	r := gin.New()
	r.POST("/paths", h.Solve)
	r.POST("/paths/batch", h.Batch)

	w := doRequest(r, http.MethodPost, "/paths", `{"rows":2,"cols":2}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[errorBody](t, w.Body.Bytes())
	assert.Equal(t, api.ErrCodeInternalError, body.Code)
	assert.NotContains(t, body.Message, "boom")

	w = doRequest(r, http.MethodPost, "/paths/batch", `{"requests":[{"rows":2,"cols":2}]}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
