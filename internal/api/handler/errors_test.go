package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/workflow"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not found",
			err:        domain.NewNotFound("job"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "forbidden",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "invalid transition",
			err: &workflow.InvalidTransitionError{
				Current:  domain.StateIntakeQuoting,
				Proposed: domain.StateClosed,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "scheduling violation",
			err: &workflow.SchedulingViolationError{
				Rule:   workflow.ViolationDetachNotComplete,
				Detail: "cannot schedule reset before detach is complete",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed input",
			err: &domain.MalformedInputError{
				Field: "date", Value: "03/10/2024", Reason: "expected YYYY-MM-DD",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped not found",
			err:        errors.Join(errors.New("loading job"), domain.NewNotFound("job")),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unclassified",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("respondError(%v) wrote status %d, want %d", tt.err, w.Code, tt.wantStatus)
			}
		})
	}
}
