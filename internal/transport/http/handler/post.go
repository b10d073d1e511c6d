package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"postboard/internal/app"
	"postboard/internal/transport/http/middleware"
	"postboard/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type PostRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

func (r PostRequest) toInput() app.PostInput {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	return app.PostInput{
		Title:     r.Title,
		Content:   r.Content,
		Published: published,
	}
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		response.Error(c, http.StatusBadRequest, "invalid limit")
		return
	}

	posts, err := h.postService.List(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "list posts failed")
		return
	}

	response.OK(c, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		if errors.Is(err, app.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("post with id %d not found", id))
			return
		}
		response.Error(c, http.StatusInternalServerError, "fetch post failed")
		return
	}

	response.OK(c, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Create(user.ID, req.toInput())
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "create post failed")
		return
	}

	response.Created(c, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Update(id, user.ID, req.toInput())
	if err != nil {
		h.writeMutationError(c, id, err)
		return
	}

	response.OK(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.Delete(id, user.ID); err != nil {
		h.writeMutationError(c, id, err)
		return
	}

	response.NoContent(c)
}

func (h *PostHandler) writeMutationError(c *gin.Context, id uint, err error) {
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, fmt.Sprintf("post with id %d not found", id))
	case errors.Is(err, app.ErrNotPostOwner):
		response.Error(c, http.StatusForbidden, "you are not authorized to edit this post")
	default:
		response.Error(c, http.StatusInternalServerError, "post operation failed")
	}
}
