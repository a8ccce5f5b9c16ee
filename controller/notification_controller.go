// api/controller/notification_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/service"
)

type NotificationController struct {
	notificationService service.INotificationService
}

func NewNotificationController(notificationService service.INotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

func (nc *NotificationController) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", nc.ListNotifications)
		notifications.GET("/unread-count", nc.UnreadCount)
		notifications.POST("/read-all", nc.MarkAllRead)
		notifications.POST("/:id/read", nc.MarkRead)
	}
}

// ListNotifications endpoint. unread=true limits the list to unread ones.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	unreadOnly := c.Query("unread") == "true"
	notifications, err := nc.notificationService.ListNotifications(c, actor, unreadOnly, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (nc *NotificationController) UnreadCount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	count, err := nc.notificationService.UnreadCount(c, actor)
	if err != nil {
		respondWithServiceError(c, err, "Failed to count notifications")
		return
	}
	c.JSON(http.StatusOK, count)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := nc.notificationService.MarkRead(c, actor, id); err != nil {
		respondWithServiceError(c, err, "Failed to mark notification as read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	n, err := nc.notificationService.MarkAllRead(c, actor)
	if err != nil {
		respondWithServiceError(c, err, "Failed to mark notifications as read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}
