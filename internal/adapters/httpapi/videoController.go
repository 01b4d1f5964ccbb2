package httpapi

import (
	"net/http"

	videoEntity "manshurat/internal/core/video"

	"github.com/gin-gonic/gin"
)

type VideoController struct{ vc VideoUseCase }

func NewVideoController(vc VideoUseCase) *VideoController { return &VideoController{vc: vc} }

func (ctl *VideoController) CreateVideo(c *gin.Context) {
	var draft videoEntity.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.vc.CreateVideo(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *VideoController) ToggleLike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := ctl.vc.ToggleLike(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *VideoController) AddComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.vc.AddComment(c.Request.Context(), id, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *VideoController) RecordView(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := ctl.vc.RecordView(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *VideoController) DeleteVideo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := ctl.vc.DeleteVideo(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"video_id": id, "deleted": deleted})
}

func (ctl *VideoController) Feed(c *gin.Context) {
	order, ok := sortParam(c)
	if !ok {
		return
	}
	res, err := ctl.vc.Feed(c.Request.Context(), order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": res})
}
