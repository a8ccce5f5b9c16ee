package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/util"
)

type stubTokens map[string]uint

func (s stubTokens) ParseToken(token string) (uint, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, echo_errors.ErrUnauthorized
}

type stubActors map[uint]*model.Actor

func (s stubActors) Resolve(ctx context.Context, userID uint) (*model.Actor, error) {
	if userID == 99 {
		return nil, errors.New("database is down")
	}
	if actor, ok := s[userID]; ok {
		return actor, nil
	}
	return nil, echo_errors.ErrUnauthorized
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := util.GetActorFromContext(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, actor.Username)
	})
	return r
}

func get(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	tokens := stubTokens{"good": 10, "ghost": 42, "flaky": 99}
	actors := stubActors{10: {ID: 10, Username: "alice", Role: model.RoleResident}}
	r := newEngine(Authenticate(tokens, actors))

	cases := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"valid token", "Bearer good", http.StatusOK, "alice"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer forged", http.StatusUnauthorized, ""},
		{"deleted user", "Bearer ghost", http.StatusUnauthorized, ""},
		{"store failure", "Bearer flaky", http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, map[string]string{"Authorization": tc.header})
			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/whoami", func(c *gin.Context) {
		seen = util.RequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	w := get(r, map[string]string{util.RequestIDHeader: "req-123"})
	assert.Equal(t, "req-123", w.Header().Get(util.RequestIDHeader))
	assert.Equal(t, "req-123", seen)

	w = get(r, nil)
	generated := w.Header().Get(util.RequestIDHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, seen)
}

func TestRateLimiterFallsBackToLocalBuckets(t *testing.T) {
	r := newEngine(RateLimiter(2, time.Minute))

	assert.Equal(t, http.StatusOK, get(r, nil).Code)
	assert.Equal(t, http.StatusOK, get(r, nil).Code)
	w := get(r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
}

func TestLoggerAndMetricsPassThrough(t *testing.T) {
	r := newEngine(RequestID(), Metrics(), Logger())
	w := get(r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}
