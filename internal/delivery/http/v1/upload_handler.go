package v1

import (
	"net/http"

	"reelhire-backend/internal/delivery/http/middleware"
	"reelhire-backend/internal/delivery/http/response"
	"reelhire-backend/internal/usecase"
	"reelhire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart uploads at 100 MB, enough for a
// 60-second clip at high bitrate.
const maxUploadBytes = 100 << 20

type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

func NewUploadHandler(protected *gin.RouterGroup, uploadUC usecase.UploadUsecase) {
	handler := &UploadHandler{uploadUC: uploadUC}

	protected.POST("/uploads", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.Upload)
}

// Upload godoc
// @Summary      Upload Media
// @Description  Store a video, thumbnail or avatar file and return its public URL.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  formData  string  true  "video, thumbnail or avatar"
// @Param        file  formData  file    true  "File to upload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	kind := c.PostForm("kind")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	result, err := h.uploadUC.Upload(c.Request.Context(), userID, kind, fileHeader.Filename, file)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Upload complete", result)
}
