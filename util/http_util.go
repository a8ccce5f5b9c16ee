// api/util/http_util.go
package util

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

const (
	ActorKey     = "actor"
	RequestIDKey = "requestID"

	RequestIDHeader = "X-Request-ID"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.Int("status", code),
		zap.String("requestID", c.GetString(RequestIDKey)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

func SetActor(c *gin.Context, actor *model.Actor) {
	c.Set(ActorKey, actor)
}

// GetActorFromContext returns the actor resolved by the authentication
// middleware for this request.
func GetActorFromContext(c *gin.Context) (*model.Actor, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return nil, false
	}
	actor, ok := value.(*model.Actor)
	return actor, ok && actor != nil
}

func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// ParseUintQuery returns nil when the query parameter is absent.
func ParseUintQuery(c *gin.Context, name string) (*uint, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	v := uint(id)
	return &v, nil
}

type requestIDCtxKey struct{}

// WithRequestID stores the request id on ctx for code below the controllers.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, requestID)
}

// RequestIDFromContext also accepts a *gin.Context, whose keys are reachable
// through Value.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDCtxKey{}).(string); ok {
		return id
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
