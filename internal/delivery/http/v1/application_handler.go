package v1

import (
	"net/http"

	"reelhire-backend/internal/delivery/http/middleware"
	"reelhire-backend/internal/delivery/http/response"
	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		apps.POST("", handler.Apply)
		apps.GET("", handler.List)
		apps.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	JobVideoID  int64   `json:"job_video_id" binding:"required"`
	UserVideoID int64   `json:"user_video_id" binding:"required"`
	Note        *string `json:"note"`
	ResumeURL   *string `json:"resume_url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a Job
// @Description  Submit the caller's video resume to a job video. One application per job per user.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	app := &domain.Application{
		JobVideoID:  req.JobVideoID,
		UserVideoID: req.UserVideoID,
		Note:        req.Note,
		ResumeURL:   req.ResumeURL,
	}

	created, err := h.applicationUC.Apply(c.Request.Context(), userID, app)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", gin.H{"application": created})
}

// List godoc
// @Summary      List Applications
// @Description  Job seekers see their own applications, employers see applications to their job videos.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	apps, err := h.applicationUC.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications", gin.H{"applications": apps})
}

// UpdateStatus godoc
// @Summary      Update Application Status
// @Description  Move an application through the hiring pipeline. Only the employer owning the job video may update.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", gin.H{"application": app})
}
