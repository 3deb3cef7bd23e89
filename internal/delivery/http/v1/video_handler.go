package v1

import (
	"net/http"
	"strconv"

	"reelhire-backend/internal/delivery/http/middleware"
	"reelhire-backend/internal/delivery/http/response"
	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUC domain.VideoUsecase
}

func NewVideoHandler(public *gin.RouterGroup, protected *gin.RouterGroup, videoUC domain.VideoUsecase) {
	handler := &VideoHandler{videoUC: videoUC}

	publicVideos := public.Group("/videos")
	{
		publicVideos.GET("", handler.List)
		publicVideos.GET("/:id", handler.Get)
		publicVideos.GET("/:id/comments", handler.ListComments)
	}
	public.GET("/users/:id/videos", handler.ListByUser)

	protectedVideos := protected.Group("/videos")
	{
		protectedVideos.POST("", handler.Create)
		protectedVideos.GET("/recommended", handler.Recommended)
		protectedVideos.POST("/:id/like", handler.Like)
		protectedVideos.POST("/:id/share", handler.Share)
		protectedVideos.POST("/:id/comments", handler.AddComment)
	}
}

type CreateVideoRequest struct {
	Title        string   `json:"title" binding:"required,max=120"`
	Description  *string  `json:"description"`
	VideoURL     string   `json:"video_url" binding:"required,url"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	VideoType    string   `json:"video_type" binding:"required,oneof=resume job"`
	Skills       []string `json:"skills"`
	Salary       *string  `json:"salary"`
	Location     *string  `json:"location"`
	JobType      *string  `json:"job_type"`
	Duration     *int     `json:"duration"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}

// List godoc
// @Summary      List Videos
// @Description  List videos of one type, newest first
// @Tags         videos
// @Produce      json
// @Param        type    query     string  true   "resume or job"
// @Param        limit   query     int     false  "Page size"
// @Param        offset  query     int     false  "Page offset"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	videoType := c.Query("type")
	limit := queryInt(c, "limit", 10)
	offset := queryInt(c, "offset", 0)

	videos, err := h.videoUC.ListByType(c.Request.Context(), videoType, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Videos", gin.H{"videos": videos})
}

// Recommended godoc
// @Summary      Recommended Feed
// @Description  Videos of the opposite kind to the caller's role, excluding the caller's own uploads
// @Tags         videos
// @Produce      json
// @Param        limit  query     int  false  "Max results"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /videos/recommended [get]
func (h *VideoHandler) Recommended(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}
	limit := queryInt(c, "limit", 10)

	videos, err := h.videoUC.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommended videos", gin.H{"videos": videos})
}

// Get godoc
// @Summary      Get Video
// @Description  Return one video. Each fetch counts as a view.
// @Tags         videos
// @Produce      json
// @Param        id   path      int  true  "Video ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	video, err := h.videoUC.GetVideo(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video details", gin.H{"video": video})
}

// Create godoc
// @Summary      Upload Video Metadata
// @Description  Register a new video. Job seekers create resume videos, employers create job videos.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        video  body      CreateVideoRequest  true  "Video details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	video := &domain.Video{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		VideoType:    req.VideoType,
		Skills:       req.Skills,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Duration:     req.Duration,
	}

	created, err := h.videoUC.CreateVideo(c.Request.Context(), userID, video)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Video created", gin.H{"video": created})
}

// Like godoc
// @Summary      Like Video
// @Tags         videos
// @Produce      json
// @Param        id   path      int  true  "Video ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id}/like [post]
func (h *VideoHandler) Like(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	video, err := h.videoUC.Like(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video liked", gin.H{"likes": video.Likes})
}

// Share godoc
// @Summary      Share Video
// @Tags         videos
// @Produce      json
// @Param        id   path      int  true  "Video ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id}/share [post]
func (h *VideoHandler) Share(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	video, err := h.videoUC.Share(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video shared", gin.H{"shares": video.Shares})
}

// ListComments godoc
// @Summary      List Comments
// @Description  Comments on a video, newest first
// @Tags         videos
// @Produce      json
// @Param        id   path      int  true  "Video ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id}/comments [get]
func (h *VideoHandler) ListComments(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	comments, err := h.videoUC.ListComments(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comments", gin.H{"comments": comments})
}

// AddComment godoc
// @Summary      Add Comment
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Video ID"
// @Param        comment  body      AddCommentRequest  true  "Comment"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id}/comments [post]
func (h *VideoHandler) AddComment(c *gin.Context) {
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

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	comment, err := h.videoUC.AddComment(c.Request.Context(), userID, id, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment added", gin.H{"comment": comment})
}

// ListByUser godoc
// @Summary      User's Videos
// @Description  All videos uploaded by one user, newest first
// @Tags         videos
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/videos [get]
func (h *VideoHandler) ListByUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	videos, err := h.videoUC.ListByUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Videos", gin.H{"videos": videos})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid " + name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, falling back to a
// default on absence or garbage.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
