// api/controller/community_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/service"
	"github.com/dev-mohitbeniwal/community/api/util"
)

// CommunityController serves communities, buildings and houses.
type CommunityController struct {
	communityService service.ICommunityService
}

func NewCommunityController(communityService service.ICommunityService) *CommunityController {
	return &CommunityController{communityService: communityService}
}

func (cc *CommunityController) RegisterRoutes(r *gin.RouterGroup) {
	communities := r.Group("/communities")
	{
		communities.POST("", cc.CreateCommunity)
		communities.GET("", cc.ListCommunities)
		communities.GET("/:id", cc.GetCommunity)
		communities.PUT("/:id", cc.UpdateCommunity)
		communities.DELETE("/:id", cc.DeleteCommunity)
		communities.GET("/:id/statistics", cc.CommunityStatistics)
	}
	buildings := r.Group("/buildings")
	{
		buildings.POST("", cc.CreateBuilding)
		buildings.GET("", cc.ListBuildings)
		buildings.GET("/:id", cc.GetBuilding)
		buildings.PUT("/:id", cc.UpdateBuilding)
		buildings.DELETE("/:id", cc.DeleteBuilding)
		buildings.GET("/:id/statistics", cc.BuildingStatistics)
	}
	houses := r.Group("/houses")
	{
		houses.POST("", cc.CreateHouse)
		houses.GET("", cc.ListHouses)
		houses.GET("/mine", cc.ListMyHouses)
		houses.GET("/:id", cc.GetHouse)
		houses.PUT("/:id", cc.UpdateHouse)
		houses.DELETE("/:id", cc.DeleteHouse)
	}
}

func queryID(c *gin.Context, name string) (uint, bool) {
	id, err := util.ParseUintQuery(c, name)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), echo_errors.ErrInvalidRequest)
		return 0, false
	}
	if id == nil {
		return 0, true
	}
	return *id, true
}

func (cc *CommunityController) CreateCommunity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var community model.Community
	if !bindJSON(c, &community) {
		return
	}
	created, err := cc.communityService.CreateCommunity(c, actor, community)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create community")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CommunityController) UpdateCommunity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var community model.Community
	if !bindJSON(c, &community) {
		return
	}
	community.ID = id
	updated, err := cc.communityService.UpdateCommunity(c, actor, community)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update community")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (cc *CommunityController) DeleteCommunity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := cc.communityService.DeleteCommunity(c, actor, id); err != nil {
		respondWithServiceError(c, err, "Failed to delete community")
		return
	}
	deleted(c, "community")
}

func (cc *CommunityController) GetCommunity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	community, err := cc.communityService.GetCommunity(c, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve community")
		return
	}
	c.JSON(http.StatusOK, community)
}

func (cc *CommunityController) ListCommunities(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	communities, err := cc.communityService.ListCommunities(c, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list communities")
		return
	}
	c.JSON(http.StatusOK, communities)
}

func (cc *CommunityController) CommunityStatistics(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := cc.communityService.CommunityStatistics(c, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to compute community statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (cc *CommunityController) CreateBuilding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var building model.Building
	if !bindJSON(c, &building) {
		return
	}
	created, err := cc.communityService.CreateBuilding(c, actor, building)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create building")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CommunityController) UpdateBuilding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var building model.Building
	if !bindJSON(c, &building) {
		return
	}
	building.ID = id
	updated, err := cc.communityService.UpdateBuilding(c, actor, building)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update building")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (cc *CommunityController) DeleteBuilding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := cc.communityService.DeleteBuilding(c, actor, id); err != nil {
		respondWithServiceError(c, err, "Failed to delete building")
		return
	}
	deleted(c, "building")
}

func (cc *CommunityController) GetBuilding(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	building, err := cc.communityService.GetBuilding(c, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve building")
		return
	}
	c.JSON(http.StatusOK, building)
}

func (cc *CommunityController) ListBuildings(c *gin.Context) {
	communityID, ok := queryID(c, "community_id")
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	buildings, err := cc.communityService.ListBuildings(c, communityID, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list buildings")
		return
	}
	c.JSON(http.StatusOK, buildings)
}

func (cc *CommunityController) BuildingStatistics(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := cc.communityService.BuildingStatistics(c, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to compute building statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (cc *CommunityController) CreateHouse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var house model.House
	if !bindJSON(c, &house) {
		return
	}
	created, err := cc.communityService.CreateHouse(c, actor, house)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create house")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CommunityController) UpdateHouse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var house model.House
	if !bindJSON(c, &house) {
		return
	}
	house.ID = id
	updated, err := cc.communityService.UpdateHouse(c, actor, house)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update house")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (cc *CommunityController) DeleteHouse(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := cc.communityService.DeleteHouse(c, actor, id); err != nil {
		respondWithServiceError(c, err, "Failed to delete house")
		return
	}
	deleted(c, "house")
}

func (cc *CommunityController) GetHouse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	house, err := cc.communityService.GetHouse(c, id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve house")
		return
	}
	c.JSON(http.StatusOK, house)
}

func (cc *CommunityController) ListHouses(c *gin.Context) {
	buildingID, ok := queryID(c, "building_id")
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	houses, err := cc.communityService.ListHouses(c, buildingID, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list houses")
		return
	}
	c.JSON(http.StatusOK, houses)
}

// ListMyHouses returns the houses the caller holds an approved binding for.
func (cc *CommunityController) ListMyHouses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	houses, err := cc.communityService.ListMyHouses(c, actor)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list houses")
		return
	}
	c.JSON(http.StatusOK, houses)
}
