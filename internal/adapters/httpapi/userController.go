package httpapi

import (
	"net/http"

	userEntity "manshurat/internal/core/user"

	"github.com/gin-gonic/gin"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) GetViewer(c *gin.Context) {
	res, err := ctl.uc.GetViewer(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) SwitchViewer(c *gin.Context) {
	var req struct {
		UserID int64 `json:"user_id" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.SwitchViewer(c.Request.Context(), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := ctl.uc.GetProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch userEntity.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.UpdateProfile(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) Search(c *gin.Context) {
	res, err := ctl.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": res})
}

func (ctl *UserController) Suggested(c *gin.Context) {
	res, err := ctl.uc.Suggested(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": res})
}
