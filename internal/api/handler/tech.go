package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/api/middleware"
	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// TechHandler handles field submission endpoints. Technicians may only
// submit and read records under their own ID; admins and managers see
// everything.
type TechHandler struct {
	tech *repository.TechRepository
	jobs *repository.JobRepository
}

// NewTechHandler creates a new tech handler.
func NewTechHandler(tech *repository.TechRepository, jobs *repository.JobRepository) *TechHandler {
	return &TechHandler{
		tech: tech,
		jobs: jobs,
	}
}

// submitterID resolves the technician ID a submission is recorded
// under. Technicians always submit as themselves regardless of the
// payload.
func submitterID(c *gin.Context, requested string) string {
	user := middleware.CurrentUser(c)
	if user == nil {
		return requested
	}
	if user.Role == domain.RoleTech || requested == "" {
		return user.ID
	}
	return requested
}

// CreateJSA handles POST /api/v1/tech/jsa.
func (h *TechHandler) CreateJSA(c *gin.Context) {
	var jsa domain.TechJSA
	if err := c.ShouldBindJSON(&jsa); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.jobs.GetByID(c.Request.Context(), jsa.JobID); err != nil {
		respondError(c, err)
		return
	}

	jsa.ID = uuid.New().String()
	jsa.TechnicianID = submitterID(c, jsa.TechnicianID)
	jsa.SubmittedAt = time.Now().UTC()

	if err := h.tech.CreateJSA(c.Request.Context(), &jsa); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, jsa)
}

// scopedTechnicianID returns the technician_id list filter, pinned to the
// caller's own ID for technician-role users.
func scopedTechnicianID(c *gin.Context) string {
	technicianID := c.Query("technician_id")
	if user := middleware.CurrentUser(c); user != nil && user.Role == domain.RoleTech {
		technicianID = user.ID
	}
	return technicianID
}

// ListJSAs handles GET /api/v1/tech/jsa. Supports a job_id filter;
// technicians only see their own submissions.
func (h *TechHandler) ListJSAs(c *gin.Context) {
	jsas, err := h.tech.ListJSAs(c.Request.Context(), c.Query("job_id"), scopedTechnicianID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jsas":  jsas,
		"total": len(jsas),
	})
}

// CreateDamageScan handles POST /api/v1/tech/damage-scans.
func (h *TechHandler) CreateDamageScan(c *gin.Context) {
	var scan domain.TechDamageScan
	if err := c.ShouldBindJSON(&scan); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.jobs.GetByID(c.Request.Context(), scan.JobID); err != nil {
		respondError(c, err)
		return
	}

	scan.ID = uuid.New().String()
	scan.TechnicianID = submitterID(c, scan.TechnicianID)
	scan.SubmittedAt = time.Now().UTC()

	if err := h.tech.CreateDamageScan(c.Request.Context(), &scan); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, scan)
}

// ListDamageScans handles GET /api/v1/tech/damage-scans. Supports a
// job_id filter; technicians only see their own submissions.
func (h *TechHandler) ListDamageScans(c *gin.Context) {
	scans, err := h.tech.ListDamageScans(c.Request.Context(), c.Query("job_id"), scopedTechnicianID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scans": scans,
		"total": len(scans),
	})
}

// CreateDetachReport handles POST /api/v1/tech/detach-reports.
func (h *TechHandler) CreateDetachReport(c *gin.Context) {
	var report domain.TechDetachReport
	if err := c.ShouldBindJSON(&report); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.jobs.GetByID(c.Request.Context(), report.JobID); err != nil {
		respondError(c, err)
		return
	}

	report.ID = uuid.New().String()
	report.TechnicianID = submitterID(c, report.TechnicianID)
	report.SubmittedAt = time.Now().UTC()

	if err := h.tech.CreateDetachReport(c.Request.Context(), &report); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListDetachReports handles GET /api/v1/tech/detach-reports. Supports
// a job_id filter; technicians only see their own submissions.
func (h *TechHandler) ListDetachReports(c *gin.Context) {
	reports, err := h.tech.ListDetachReports(c.Request.Context(), c.Query("job_id"), scopedTechnicianID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"total":   len(reports),
	})
}

// CreateResetReport handles POST /api/v1/tech/reset-reports.
func (h *TechHandler) CreateResetReport(c *gin.Context) {
	var report domain.TechResetReport
	if err := c.ShouldBindJSON(&report); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.jobs.GetByID(c.Request.Context(), report.JobID); err != nil {
		respondError(c, err)
		return
	}

	report.ID = uuid.New().String()
	report.TechnicianID = submitterID(c, report.TechnicianID)
	report.SubmittedAt = time.Now().UTC()

	if err := h.tech.CreateResetReport(c.Request.Context(), &report); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListResetReports handles GET /api/v1/tech/reset-reports. Supports a
// job_id filter; technicians only see their own submissions.
func (h *TechHandler) ListResetReports(c *gin.Context) {
	reports, err := h.tech.ListResetReports(c.Request.Context(), c.Query("job_id"), scopedTechnicianID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"total":   len(reports),
	})
}
