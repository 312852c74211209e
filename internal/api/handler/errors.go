package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/logger"
	"github.com/jmoreno/solarops/internal/workflow"
)

// respondError maps a service error onto the HTTP status it deserves
// and writes the JSON error body. Workflow violations carry their rule
// so clients can distinguish them without string matching.
func respondError(c *gin.Context, err error) {
	var (
		transitionErr *workflow.InvalidTransitionError
		violationErr  *workflow.SchedulingViolationError
		malformedErr  *domain.MalformedInputError
	)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    transitionErr.Error(),
			"current":  transitionErr.Current,
			"proposed": transitionErr.Proposed,
		})
	case errors.As(err, &violationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": violationErr.Error(),
			"rule":  violationErr.Rule,
		})
	case errors.As(err, &malformedErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": malformedErr.Error(),
			"field": malformedErr.Field,
		})
	case errors.Is(err, domain.ErrMalformedInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.CtxError(c.Request.Context(), "request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// badRequest writes a 400 for binding failures.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
}
