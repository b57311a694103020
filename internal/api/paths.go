package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/internal/service"
)

// PathHandler serves the shortest-path endpoints.
type PathHandler struct {
	solver PathSolver
	log    *logrus.Logger
}

// NewPathHandler creates a PathHandler with the given solver and logger.
func NewPathHandler(solver PathSolver, log *logrus.Logger) *PathHandler {
	return &PathHandler{solver: solver, log: log}
}

// batchRequest is the body of POST /api/v1/paths/batch.
type batchRequest struct {
	Requests []service.Request `json:"requests"`
}

// Solve handles POST /api/v1/paths. Blocked endpoints and missing paths are
// answered with 200 and the "failure" field set.
func (h *PathHandler) Solve(c *gin.Context) {
	var req service.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	out, err := h.solver.Solve(c.Request.Context(), req)
	if err != nil {
		h.respondSolveError(c, err)

		return
	}

	c.JSON(http.StatusOK, out)
}

// Batch handles POST /api/v1/paths/batch.
func (h *PathHandler) Batch(c *gin.Context) {
	var body batchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}
	if len(body.Requests) == 0 {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "requests must not be empty")

		return
	}

	items, err := h.solver.SolveBatch(c.Request.Context(), body.Requests)
	if err != nil {
		h.respondSolveError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"results": items})
}

// respondSolveError maps solver errors to HTTP responses.
func (h *PathHandler) respondSolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGridTooLarge), errors.Is(err, service.ErrBatchTooLarge):
		respondError(c, http.StatusBadRequest, ErrCodeLimitExceeded, err.Error())
	case service.IsInvalidInput(err):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
	default:
		h.log.WithError(err).Error("solving path request")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
