package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	nc    NotificationUseCase
	panel PanelScheduler
}

func NewNotificationController(nc NotificationUseCase, panel PanelScheduler) *NotificationController {
	return &NotificationController{nc: nc, panel: panel}
}

func (ctl *NotificationController) Inbox(c *gin.Context) {
	res, err := ctl.nc.Inbox(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *NotificationController) UnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"unread": ctl.nc.UnreadCount(c.Request.Context())})
}

func (ctl *NotificationController) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()
	n, err := ctl.nc.MarkAllRead(ctx, ctl.nc.ViewerID(ctx))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": n})
}

// OpenPanel schedules the read transition for the viewer's inbox. Without a
// scheduler the inbox is marked read at once.
func (ctl *NotificationController) OpenPanel(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := ctl.nc.ViewerID(ctx)
	if ctl.panel == nil {
		ctl.MarkAllRead(c)
		return
	}
	ctl.panel.Schedule(viewerID)
	c.JSON(http.StatusAccepted, gin.H{"scheduled": true})
}

func (ctl *NotificationController) ClosePanel(c *gin.Context) {
	if ctl.panel == nil {
		c.JSON(http.StatusOK, gin.H{"cancelled": false})
		return
	}
	cancelled := ctl.panel.Cancel(ctl.nc.ViewerID(c.Request.Context()))
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}
