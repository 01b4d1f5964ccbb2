package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EventController struct{ er EventReader }

func NewEventController(er EventReader) *EventController { return &EventController{er: er} }

func (ctl *EventController) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": ctl.er.Recent(limit)})
}
