package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmoreno/solarops/internal/api/middleware"
	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/service"
)

// JobHandler handles job lifecycle endpoints.
type JobHandler struct {
	jobs   *service.JobService
	photos *service.PhotoService
}

// NewJobHandler creates a new job handler.
// Parameters:
//   - jobs: job service instance.
//   - photos: photo service instance, may be nil when storage is disabled.
// Returns:
//   - *JobHandler: initialized handler.
func NewJobHandler(jobs *service.JobService, photos *service.PhotoService) *JobHandler {
	return &JobHandler{
		jobs:   jobs,
		photos: photos,
	}
}

// CreateJob handles POST /api/v1/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.jobs.Create(c.Request.Context(), &job)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListJobs handles GET /api/v1/jobs.
func (h *JobHandler) ListJobs(c *gin.Context) {
	status := domain.JobStatus(c.Query("status"))

	jobs, err := h.jobs.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetJob handles GET /api/v1/jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob handles PUT /api/v1/jobs/:id.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.jobs.Update(c.Request.Context(), c.Param("id"), &job)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type transitionRequest struct {
	State domain.JobWorkflowState `json:"state" binding:"required"`
}

// TransitionJob handles POST /api/v1/jobs/:id/transition.
func (h *JobHandler) TransitionJob(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.jobs.Transition(c.Request.Context(), c.Param("id"), req.State)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UploadPhoto handles POST /api/v1/jobs/:id/photos.
func (h *JobHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "photo storage is not configured",
		})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	uploadedBy := ""
	if user := middleware.CurrentUser(c); user != nil {
		uploadedBy = user.ID
	}

	photo, err := h.photos.Attach(c.Request.Context(), c.Param("id"), &service.PhotoUpload{
		Filename:   fileHeader.Filename,
		Size:       fileHeader.Size,
		Reader:     file,
		Caption:    c.PostForm("caption"),
		Phase:      c.PostForm("phase"),
		UploadedBy: uploadedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}
