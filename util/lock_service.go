// api/util/lock_service.go

package util

import (
	"context"
	"time"

	"github.com/dev-mohitbeniwal/community/api/db"
)

// LockService guards short critical sections across API instances with a
// Redis SETNX lock released by compare-and-delete on its token. Without Redis
// every lock is granted and the row locks taken by the DAO are the only guard.
type LockService struct{}

func NewLockService() *LockService {
	return &LockService{}
}

func (l *LockService) Lock(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	if db.RedisClient == nil {
		return "", true, nil
	}
	return db.LockResource(ctx, name, ttl)
}

func (l *LockService) Unlock(ctx context.Context, name, token string) error {
	if db.RedisClient == nil {
		return nil
	}
	return db.UnlockResource(ctx, name, token)
}
