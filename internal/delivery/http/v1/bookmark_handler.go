package v1

import (
	"net/http"

	"reelhire-backend/internal/delivery/http/middleware"
	"reelhire-backend/internal/delivery/http/response"
	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkUC domain.BookmarkUsecase
}

func NewBookmarkHandler(protected *gin.RouterGroup, bookmarkUC domain.BookmarkUsecase) {
	handler := &BookmarkHandler{bookmarkUC: bookmarkUC}

	bookmarks := protected.Group("/bookmarks")
	{
		bookmarks.GET("", handler.List)
		bookmarks.POST("", handler.Add)
		bookmarks.GET("/:videoId", handler.Check)
		bookmarks.DELETE("/:videoId", handler.Remove)
	}
}

type AddBookmarkRequest struct {
	VideoID int64 `json:"video_id" binding:"required"`
}

// List godoc
// @Summary      List Bookmarks
// @Tags         bookmarks
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	bookmarks, err := h.bookmarkUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bookmarks", gin.H{"bookmarks": bookmarks})
}

// Add godoc
// @Summary      Add Bookmark
// @Description  Bookmark a video. Bookmarking the same video twice returns the existing bookmark.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        bookmark  body      AddBookmarkRequest  true  "Video to bookmark"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	var req AddBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	bookmark, err := h.bookmarkUC.Add(c.Request.Context(), userID, req.VideoID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Bookmarked", gin.H{"bookmark": bookmark})
}

// Check godoc
// @Summary      Check Bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        videoId  path      int  true  "Video ID"
// @Success      200  {object}  response.Response
// @Router       /bookmarks/{videoId} [get]
func (h *BookmarkHandler) Check(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		c.Error(err)
		return
	}

	bookmarked, err := h.bookmarkUC.IsBookmarked(c.Request.Context(), userID, videoID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bookmark status", gin.H{"is_bookmarked": bookmarked})
}

// Remove godoc
// @Summary      Remove Bookmark
// @Description  Delete a bookmark. Removing an absent bookmark still succeeds.
// @Tags         bookmarks
// @Param        videoId  path  int  true  "Video ID"
// @Success      204  "No Content"
// @Router       /bookmarks/{videoId} [delete]
func (h *BookmarkHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	videoID, err := pathID(c, "videoId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.bookmarkUC.Remove(c.Request.Context(), userID, videoID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
