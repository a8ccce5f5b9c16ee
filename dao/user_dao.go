package dao

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *model.User) error {
	start := time.Now()
	logger.Info("Creating new user", zap.String("username", user.Username))

	if err := dao.DB.WithContext(ctx).Create(user).Error; err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.Duration("duration", time.Since(start)))
		return conflictError(err, echo_errors.ErrUserConflict)
	}

	logger.Info("User created successfully",
		zap.Uint("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	if err := dao.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrUserNotFound)
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := dao.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrUserNotFound)
	}
	return &user, nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	var users []model.User
	q := applyPage(dao.DB.WithContext(ctx).Order("id"), limit, offset)
	if err := q.Find(&users).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrUserNotFound)
	}
	return users, nil
}

// SetUserRole replaces the user's role reference. A nil role clears it.
func (dao *UserDAO) SetUserRole(ctx context.Context, userID uint, roleID *uint) (*model.User, error) {
	logger.Info("Updating user role", zap.Uint("userID", userID))

	var user model.User
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return translateError(err, echo_errors.ErrUserNotFound)
		}
		user.RoleID = roleID
		if err := tx.Model(&user).Update("role_id", roleID).Error; err != nil {
			return translateError(err, echo_errors.ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to update user role", zap.Error(err), zap.Uint("userID", userID))
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetRoleByType(ctx context.Context, roleType string) (*model.Role, error) {
	var role model.Role
	if err := dao.DB.WithContext(ctx).Where("role_type = ?", roleType).Order("id").First(&role).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrRoleNotFound)
	}
	return &role, nil
}

func (dao *UserDAO) GetRole(ctx context.Context, roleID uint) (*model.Role, error) {
	var role model.Role
	if err := dao.DB.WithContext(ctx).First(&role, roleID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrRoleNotFound)
	}
	return &role, nil
}
