package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/internal/app"
	"postboard/internal/transport/http/middleware"
	"postboard/internal/transport/http/response"
)

type VoteHandler struct {
	voteService *app.VoteService
}

type VoteRequest struct {
	PostID uint `json:"post_id" binding:"required"`
	Dir    int  `json:"dir"`
}

func NewVoteHandler(voteService *app.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// Vote casts (dir=1) or withdraws (dir=0) the caller's vote on a post.
func (h *VoteHandler) Vote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Dir != 0 && req.Dir != 1 {
		response.Error(c, http.StatusBadRequest, "dir must be 0 or 1")
		return
	}

	if req.Dir == 1 {
		err := h.voteService.Cast(user.ID, req.PostID)
		if err != nil {
			h.writeVoteError(c, req.PostID, err)
			return
		}
		response.Created(c, gin.H{"message": "successfully added vote"})
		return
	}

	if err := h.voteService.Withdraw(user.ID, req.PostID); err != nil {
		h.writeVoteError(c, req.PostID, err)
		return
	}
	response.OK(c, gin.H{"message": "successfully deleted vote"})
}

func (h *VoteHandler) writeVoteError(c *gin.Context, postID uint, err error) {
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, fmt.Sprintf("post with id %d not found", postID))
	case errors.Is(err, app.ErrAlreadyVoted):
		response.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, app.ErrVoteNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "vote operation failed")
	}
}
