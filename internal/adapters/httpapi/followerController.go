package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FollowerController struct{ fc FollowerUseCase }

func NewFollowerController(fc FollowerUseCase) *FollowerController {
	return &FollowerController{fc: fc}
}

// ToggleFollow follows the user in the path, or unfollows when already followed.
func (ctl *FollowerController) ToggleFollow(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := ctl.fc.ToggleFollow(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *FollowerController) Following(c *gin.Context) {
	res, err := ctl.fc.Following(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": res})
}
