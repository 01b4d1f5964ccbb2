package httpapi

import (
	"net/http"

	"manshurat/internal/core/timeline"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

// sortParam reads ?sort=, defaulting to newest.
func sortParam(c *gin.Context) (timeline.Order, bool) {
	order, ok := timeline.ParseOrder(c.Query("sort"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort, use newest, oldest or most_liked"})
	}
	return order, ok
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.pc.CreatePost(c.Request.Context(), req.Content, req.Image)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) ToggleLike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := ctl.pc.ToggleLike(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) AddComment(c *gin.Context) {
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
	res, err := ctl.pc.AddComment(c.Request.Context(), id, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) Feed(c *gin.Context) {
	order, ok := sortParam(c)
	if !ok {
		return
	}
	res, err := ctl.pc.Feed(c.Request.Context(), order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": res})
}

func (ctl *PostController) ProfilePosts(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, ok := sortParam(c)
	if !ok {
		return
	}
	res, err := ctl.pc.ProfilePosts(c.Request.Context(), id, order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": res})
}
