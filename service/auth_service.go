// api/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

// IAuthService issues and verifies bearer tokens.
type IAuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error)
	ParseToken(tokenString string) (uint, error)
}

// AccountStore is the user persistence the auth and user services need.
type AccountStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, userID uint) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)
	SetUserRole(ctx context.Context, userID uint, roleID *uint) (*model.User, error)
	GetRoleByType(ctx context.Context, roleType string) (*model.Role, error)
}

type AuthConfig struct {
	Secret   []byte
	TokenTTL time.Duration
	Issuer   string
}

type tokenClaims struct {
	jwt.StandardClaims
	Username string `json:"username"`
}

type AuthService struct {
	store  AccountStore
	config AuthConfig
	now    func() time.Time
}

var _ IAuthService = &AuthService{}

func NewAuthService(store AccountStore, config AuthConfig) *AuthService {
	if config.TokenTTL <= 0 {
		config.TokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, config: config, now: time.Now}
}

// Register creates an active account with the resident role when that role
// exists.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: username and a password of at least 8 characters are required", echo_errors.ErrInvalidUserData)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		IsActive:     true,
	}
	if role, err := s.store.GetRoleByType(ctx, model.RoleTypeResident); err == nil {
		user.RoleID = &role.ID
	} else {
		logger.Warn("Resident role unavailable, registering without a role", zap.Error(err))
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	logger.Info("User registered", zap.Uint("userID", user.ID), zap.String("username", user.Username))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, echo_errors.ErrUserNotFound) {
			return nil, echo_errors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, echo_errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, echo_errors.ErrInvalidCredentials
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.config.TokenTTL)
	claims := tokenClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    s.config.Issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
		Username: user.Username,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("User logged in", zap.Uint("userID", user.ID))
	return &model.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// ParseToken verifies the signature and expiry and returns the user id.
func (s *AuthService) ParseToken(tokenString string) (uint, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.config.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: invalid token", echo_errors.ErrUnauthorized)
	}
	if s.config.Issuer != "" && !claims.VerifyIssuer(s.config.Issuer, true) {
		return 0, fmt.Errorf("%w: unexpected issuer", echo_errors.ErrUnauthorized)
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid subject", echo_errors.ErrUnauthorized)
	}
	return uint(id), nil
}
