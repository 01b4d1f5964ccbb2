package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TimelineController struct{ tc TimelineUseCase }

func NewTimelineController(tc TimelineUseCase) *TimelineController {
	return &TimelineController{tc: tc}
}

func (ctl *TimelineController) Home(c *gin.Context) {
	order, ok := sortParam(c)
	if !ok {
		return
	}
	res, err := ctl.tc.Home(c.Request.Context(), order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": res})
}
