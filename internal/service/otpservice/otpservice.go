package otpservice

import (
	"context"

	"github.com/otpdesk/otpdesk/internal/domain"
	"github.com/otpdesk/otpdesk/internal/observability"
	"go.uber.org/zap"
)

type Store interface {
	CreateOtpRequest(ctx context.Context, userID int, appName string) (*domain.OtpRequest, error)
	FulfillOtpRequest(ctx context.Context, id int, code string) (*domain.OtpRequest, error)
	ListOtpRequests(ctx context.Context) ([]domain.OtpRequest, error)
	ListOtpRequestsByUser(ctx context.Context, userID int) ([]domain.OtpRequest, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Request purchases a verification code. The fee debit and the request
// creation happen in one step inside the store.
func (s *Service) Request(ctx context.Context, userID int, appName string) (*domain.OtpRequest, error) {
	req, err := s.store.CreateOtpRequest(ctx, userID, appName)
	observability.ObserveOp("create_otp_request", err)
	if err != nil {
		zap.L().Info("can't create otp request", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("otp request created",
		zap.Int("request_id", req.ID),
		zap.Int("user_id", userID),
		zap.String("app_name", appName))
	return req, nil
}

func (s *Service) Fulfill(ctx context.Context, id int, code string) (*domain.OtpRequest, error) {
	req, err := s.store.FulfillOtpRequest(ctx, id, code)
	observability.ObserveOp("fulfill_otp_request", err)
	if err != nil {
		zap.L().Info("can't fulfill otp request", zap.Int("request_id", id), zap.Error(err))
		return nil, err
	}
	zap.L().Info("otp request fulfilled",
		zap.Int("request_id", req.ID),
		zap.String("status", req.Status))
	return req, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.OtpRequest, error) {
	reqs, err := s.store.ListOtpRequestsByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list otp requests", zap.Error(err))
		return nil, err
	}
	return reqs, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.OtpRequest, error) {
	reqs, err := s.store.ListOtpRequests(ctx)
	if err != nil {
		zap.L().Error("failed to list otp requests", zap.Error(err))
		return nil, err
	}
	return reqs, nil
}
