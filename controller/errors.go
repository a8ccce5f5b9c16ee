// api/controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/util"
	helper_util "github.com/dev-mohitbeniwal/community/api/util/helper"
)

var (
	badRequestErrors = []error{
		echo_errors.ErrInvalidState,
		echo_errors.ErrDuplicateBinding,
		echo_errors.ErrExpired,
		echo_errors.ErrInvalidRemark,
		echo_errors.ErrAlreadyRated,
		echo_errors.ErrInvalidPagination,
		echo_errors.ErrInvalidRequest,
		echo_errors.ErrInvalidCommunityData,
		echo_errors.ErrInvalidBuildingData,
		echo_errors.ErrInvalidHouseData,
		echo_errors.ErrInvalidBindingData,
		echo_errors.ErrInvalidWorkOrderData,
		echo_errors.ErrInvalidComplaintData,
		echo_errors.ErrInvalidVisitorPassData,
		echo_errors.ErrInvalidAnnouncementData,
		echo_errors.ErrInvalidMerchantData,
		echo_errors.ErrInvalidMerchantOrderData,
		echo_errors.ErrInvalidBillData,
		echo_errors.ErrInvalidPaymentData,
		echo_errors.ErrInvalidUserData,
	}
	notFoundErrors = []error{
		echo_errors.ErrCommunityNotFound,
		echo_errors.ErrBuildingNotFound,
		echo_errors.ErrHouseNotFound,
		echo_errors.ErrBindingNotFound,
		echo_errors.ErrWorkOrderNotFound,
		echo_errors.ErrComplaintNotFound,
		echo_errors.ErrVisitorPassNotFound,
		echo_errors.ErrAnnouncementNotFound,
		echo_errors.ErrNotificationNotFound,
		echo_errors.ErrMerchantNotFound,
		echo_errors.ErrMerchantServiceNotFound,
		echo_errors.ErrMerchantOrderNotFound,
		echo_errors.ErrBillNotFound,
		echo_errors.ErrPaymentNotFound,
		echo_errors.ErrUserNotFound,
		echo_errors.ErrRoleNotFound,
	}
	conflictErrors = []error{
		echo_errors.ErrCommunityConflict,
		echo_errors.ErrBuildingConflict,
		echo_errors.ErrHouseConflict,
		echo_errors.ErrMerchantConflict,
		echo_errors.ErrBillConflict,
		echo_errors.ErrUserConflict,
		echo_errors.ErrPaymentInProgress,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, echo_errors.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, echo_errors.ErrUnauthorized), errors.Is(err, echo_errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes the error message for client errors and a
// generic message for everything else.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	code := statusFor(err)
	message := fallback
	if code < http.StatusInternalServerError {
		message = err.Error()
	}
	util.RespondWithError(c, code, message, err)
}

func requireActor(c *gin.Context) (*model.Actor, bool) {
	actor, ok := util.GetActorFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", echo_errors.ErrUnauthorized)
		return nil, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := util.ParseUintParam(c, name)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), echo_errors.ErrInvalidRequest)
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int, bool) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return 0, 0, false
	}
	return limit, offset, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return false
	}
	return true
}

func deleted(c *gin.Context, what string) {
	c.JSON(http.StatusOK, gin.H{"message": what + " deleted"})
}
