package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

// RoleRetrievalDAO reads the user and role rows an actor is resolved from.
type RoleRetrievalDAO struct {
	DB *gorm.DB
}

func NewRoleRetrievalDAO(db *gorm.DB) *RoleRetrievalDAO {
	return &RoleRetrievalDAO{DB: db}
}

func (dao *RoleRetrievalDAO) FetchUser(ctx context.Context, userID uint) (*model.User, error) {
	start := time.Now()
	var user model.User
	err := dao.DB.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo_errors.ErrUserNotFound
		}
		logger.Error("Error fetching user for actor resolution", zap.Error(err), zap.Uint("userID", userID))
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrDatabaseOperation, err)
	}
	logger.Debug("User fetched for actor resolution",
		zap.Uint("userID", userID),
		zap.Duration("duration", time.Since(start)))
	return &user, nil
}

func (dao *RoleRetrievalDAO) FetchRole(ctx context.Context, roleID uint) (*model.Role, error) {
	var role model.Role
	err := dao.DB.WithContext(ctx).First(&role, roleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo_errors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrDatabaseOperation, err)
	}
	return &role, nil
}
