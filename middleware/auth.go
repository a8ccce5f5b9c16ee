// api/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/util"
)

// TokenParser verifies a bearer token and returns the user id it was issued
// for.
type TokenParser interface {
	ParseToken(tokenString string) (uint, error)
}

// ActorLookup resolves the actor of an authenticated user.
type ActorLookup interface {
	Resolve(ctx context.Context, userID uint) (*model.Actor, error)
}

// Authenticate verifies the bearer token and stores the resolved actor on
// the request context. The role is looked up on every request.
func Authenticate(tokens TokenParser, actors ActorLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			logger.Warn("No bearer token provided", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := tokens.ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			logger.Warn("Rejected bearer token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		actor, err := actors.Resolve(c, userID)
		if err != nil {
			if errors.Is(err, echo_errors.ErrUnauthorized) {
				logger.Warn("Token subject cannot act", zap.Uint("userID", userID), zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			logger.Error("Failed to resolve actor", zap.Uint("userID", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		util.SetActor(c, actor)
		c.Next()
	}
}
