package helper_util

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: limit: %v", echo_errors.ErrInvalidPagination, err)
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: offset: %v", echo_errors.ErrInvalidPagination, err)
	}
	if limit < 1 || limit > MaxLimit || offset < 0 {
		return 0, 0, fmt.Errorf("%w: limit must be 1..%d and offset non-negative", echo_errors.ErrInvalidPagination, MaxLimit)
	}
	return limit, offset, nil
}
