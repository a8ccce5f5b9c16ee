package helper_util

import (
	"errors"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/items?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	limit, offset, err := GetPaginationParams(contextWithQuery(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, 0, offset)

	limit, offset, err = GetPaginationParams(contextWithQuery("limit=5&offset=10"))
	require.NoError(t, err)
	assert.Equal(t, 5, limit)
	assert.Equal(t, 10, offset)

	for _, q := range []string{"limit=abc", "limit=0", "limit=101", "offset=-1"} {
		_, _, err = GetPaginationParams(contextWithQuery(q))
		assert.True(t, errors.Is(err, echo_errors.ErrInvalidPagination), q)
	}
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2024, 5, 6, 9, 30, 15, 0, time.UTC)
	number := NewOrderNumber("P", now)

	assert.Regexp(t, regexp.MustCompile(`^P20240506093015[0-9A-F]{6}$`), number)
	assert.NotEqual(t, number, NewOrderNumber("P", now))
}
