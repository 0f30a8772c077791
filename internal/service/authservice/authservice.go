package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/otpdesk/otpdesk/internal/domain"
	"github.com/otpdesk/otpdesk/internal/observability"
	"github.com/otpdesk/otpdesk/pkg/auth"
	"go.uber.org/zap"
)

type Store interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
}

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	store       Store
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(store Store, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		store:       store,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	// the store enforces uniqueness atomically, no pre-check needed
	user, err := s.store.CreateUser(ctx, username, hashedPassword)
	observability.ObserveOp("create_user", err)
	if err != nil {
		zap.L().Info("can't create user", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
