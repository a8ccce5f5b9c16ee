// api/controller/announcement_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
)

type AnnouncementController struct {
	announcementService service.IAnnouncementService
}

func NewAnnouncementController(announcementService service.IAnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

func (ac *AnnouncementController) RegisterRoutes(r *gin.RouterGroup) {
	announcements := r.Group("/announcements")
	{
		announcements.POST("", ac.CreateAnnouncement)
		announcements.GET("", ac.ListAnnouncements)
		announcements.GET("/:id", ac.GetAnnouncement)
		announcements.PUT("/:id", ac.UpdateAnnouncement)
		announcements.DELETE("/:id", ac.DeleteAnnouncement)
		announcements.POST("/:id/publish", ac.PublishAnnouncement)
		announcements.POST("/:id/read", ac.MarkRead)
	}
}

func (ac *AnnouncementController) CreateAnnouncement(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req model.AnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}
	announcement, err := ac.announcementService.CreateAnnouncement(c, actor, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create announcement")
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

func (ac *AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.AnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}
	announcement, err := ac.announcementService.UpdateAnnouncement(c, actor, id, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update announcement")
		return
	}
	c.JSON(http.StatusOK, announcement)
}

func (ac *AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ac.announcementService.DeleteAnnouncement(c, actor, id); err != nil {
		respondWithServiceError(c, err, "Failed to delete announcement")
		return
	}
	deleted(c, "announcement")
}

func (ac *AnnouncementController) GetAnnouncement(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	announcement, err := ac.announcementService.GetAnnouncement(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve announcement")
		return
	}
	c.JSON(http.StatusOK, announcement)
}

func (ac *AnnouncementController) ListAnnouncements(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	announcements, err := ac.announcementService.ListAnnouncements(c, actor, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list announcements")
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (ac *AnnouncementController) PublishAnnouncement(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	announcement, err := ac.announcementService.PublishAnnouncement(c, actor, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to publish announcement")
		return
	}
	c.JSON(http.StatusOK, announcement)
}

func (ac *AnnouncementController) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ac.announcementService.MarkRead(c, actor, id); err != nil {
		respondWithServiceError(c, err, "Failed to mark announcement as read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "announcement marked as read"})
}
