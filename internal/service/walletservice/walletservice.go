package walletservice

import (
	"context"

	"github.com/otpdesk/otpdesk/internal/domain"
	"github.com/otpdesk/otpdesk/internal/observability"
	"go.uber.org/zap"
)

type Store interface {
	CreateTransaction(ctx context.Context, userID, amount int, utr string) (*domain.Transaction, error)
	ResolveTransaction(ctx context.Context, id int, decision string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

// CreateDeposit records a cash-deposit claim awaiting administrator
// review. Nothing is credited until the claim is approved.
func (s *Service) CreateDeposit(ctx context.Context, userID, amount int, utr string) (*domain.Transaction, error) {
	txn, err := s.store.CreateTransaction(ctx, userID, amount, utr)
	observability.ObserveOp("create_transaction", err)
	if err != nil {
		zap.L().Info("can't create deposit claim", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("deposit claim created",
		zap.Int("transaction_id", txn.ID),
		zap.Int("user_id", userID),
		zap.Int("amount", amount))
	return txn, nil
}

func (s *Service) Resolve(ctx context.Context, id int, decision string) (*domain.Transaction, error) {
	txn, err := s.store.ResolveTransaction(ctx, id, decision)
	observability.ObserveOp("resolve_transaction", err)
	if err != nil {
		zap.L().Info("can't resolve deposit claim", zap.Int("transaction_id", id), zap.Error(err))
		return nil, err
	}
	zap.L().Info("deposit claim resolved",
		zap.Int("transaction_id", txn.ID),
		zap.String("status", txn.Status))
	return txn, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.Transaction, error) {
	txns, err := s.store.ListTransactionsByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.store.ListTransactions(ctx)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
