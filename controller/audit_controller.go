// api/controller/audit_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/community/api/audit"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	"github.com/dev-mohitbeniwal/community/api/util"
	helper_util "github.com/dev-mohitbeniwal/community/api/util/helper"
)

// AuditController exposes the audit trail to privileged actors.
type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{auditService: auditService}
}

func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit-logs", ac.QueryLogs)
}

// QueryLogs endpoint. from and to are RFC3339 timestamps.
func (ac *AuditController) QueryLogs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !engine.IsPrivileged(actor) {
		util.RespondWithError(c, http.StatusForbidden, echo_errors.ErrNotAuthorized.Error(), echo_errors.ErrNotAuthorized)
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	query := audit.Query{
		ResourceType: c.Query("resource_type"),
		Action:       c.Query("action"),
		Limit:        limit,
		Offset:       offset,
	}
	var err error
	if query.From, err = helper_util.ParseOptionalTime(c.Query("from")); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp", err)
		return
	}
	if query.To, err = helper_util.ParseOptionalTime(c.Query("to")); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp", err)
		return
	}
	if query.UserID, ok = queryID(c, "user_id"); !ok {
		return
	}
	if query.ResourceID, ok = queryID(c, "resource_id"); !ok {
		return
	}

	logs, err := ac.auditService.QueryLogs(c, query)
	if err != nil {
		respondWithServiceError(c, err, "Failed to query audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
