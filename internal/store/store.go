package store

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/otpdesk/otpdesk/internal/domain"
)

// OtpFee is the fixed balance debit for every OTP request.
const OtpFee = 7

// relayNumbers is the fixed pool of phone numbers an OTP request can be
// assigned to. Selection is uniform and with replacement.
var relayNumbers = []string{
	"+916392621695",
	"+916260691879",
	"+919905360468",
	"+918595806274",
	"+917083123589",
	"+919678728181",
	"+918177995686",
	"+919036738920",
	"+918669077428",
	"+919535340856",
	"+917736275076",
	"+919720165149",
}

// Store is the in-memory authority of record for users, deposit
// transactions and OTP requests. All mutation goes through its methods;
// entities are handed out as copies so callers can never touch shared
// state. A single mutex serializes mutations, which also makes every
// check-then-act sequence (duplicate usernames, balance sufficiency,
// status transitions) a single atomic step.
type Store struct {
	mu sync.RWMutex

	users        map[int]domain.User
	transactions map[int]domain.Transaction
	otpRequests  map[int]domain.OtpRequest

	byUsername map[string]int

	nextUserID        int
	nextTransactionID int
	nextOtpRequestID  int

	rnd *rand.Rand
}

func New() *Store {
	return &Store{
		users:             make(map[int]domain.User),
		transactions:      make(map[int]domain.Transaction),
		otpRequests:       make(map[int]domain.OtpRequest),
		byUsername:        make(map[string]int),
		nextUserID:        1,
		nextTransactionID: 1,
		nextOtpRequestID:  1,
		rnd:               rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Store) GetUser(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// GetUserByUsername is an exact, case-sensitive lookup.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createUser(username, passwordHash, false)
}

// CreateAdmin seeds the bootstrap administrator account. It is called
// once at process start.
func (s *Store) CreateAdmin(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createUser(username, passwordHash, true)
}

func (s *Store) createUser(username, passwordHash string, isAdmin bool) (*domain.User, error) {
	if _, ok := s.byUsername[username]; ok {
		return nil, ErrUsernameTaken
	}

	user := domain.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		Balance:      0,
		IsAdmin:      isAdmin,
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.byUsername[username] = user.ID
	return &user, nil
}

// AdjustBalance atomically sets balance = balance + delta and returns
// the updated user. The store does not clamp the result: callers gate
// debits against sufficiency where the business rule requires it.
func (s *Store) AdjustBalance(ctx context.Context, userID, delta int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	user.Balance += delta
	s.users[userID] = user
	return &user, nil
}

func (s *Store) CreateTransaction(ctx context.Context, userID, amount int, utr string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, ErrUserNotFound
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if utr == "" {
		return nil, ErrInvalidReference
	}

	txn := domain.Transaction{
		ID:        s.nextTransactionID,
		UserID:    userID,
		Amount:    amount,
		UTRNumber: utr,
		Status:    domain.TransactionPending,
		CreatedAt: time.Now(),
	}
	s.nextTransactionID++
	s.transactions[txn.ID] = txn
	return &txn, nil
}

// ResolveTransaction moves a pending transaction to its terminal status.
// Approval credits the claimed amount to the owner in the same critical
// section, so the status change and the credit are never observable
// apart. A transaction can be resolved at most once.
func (s *Store) ResolveTransaction(ctx context.Context, id int, decision string) (*domain.Transaction, error) {
	if decision != domain.TransactionApproved && decision != domain.TransactionRejected {
		return nil, ErrInvalidDecision
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	if txn.Status != domain.TransactionPending {
		return nil, ErrTransactionResolved
	}

	txn.Status = decision
	s.transactions[id] = txn

	if decision == domain.TransactionApproved {
		owner := s.users[txn.UserID]
		owner.Balance += txn.Amount
		s.users[owner.ID] = owner
	}
	return &txn, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := make([]domain.Transaction, 0, len(s.transactions))
	for id := 1; id < s.nextTransactionID; id++ {
		txns = append(txns, s.transactions[id])
	}
	return txns, nil
}

func (s *Store) ListTransactionsByUser(ctx context.Context, userID int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := make([]domain.Transaction, 0)
	for id := 1; id < s.nextTransactionID; id++ {
		if txn := s.transactions[id]; txn.UserID == userID {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

// CreateOtpRequest debits the fee and creates the request as one atomic
// step. A user whose balance is below the fee gets ErrInsufficientBalance
// and no entity is created.
func (s *Store) CreateOtpRequest(ctx context.Context, userID int, appName string) (*domain.OtpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if appName == "" {
		return nil, ErrInvalidAppName
	}
	if user.Balance < OtpFee {
		return nil, ErrInsufficientBalance
	}

	user.Balance -= OtpFee
	s.users[userID] = user

	req := domain.OtpRequest{
		ID:           s.nextOtpRequestID,
		UserID:       userID,
		AppName:      appName,
		Code:         fmt.Sprintf("%06d", s.rnd.Intn(1000000)),
		Status:       domain.OtpRequestPending,
		MobileNumber: relayNumbers[s.rnd.Intn(len(relayNumbers))],
		CreatedAt:    time.Now(),
	}
	s.nextOtpRequestID++
	s.otpRequests[req.ID] = req
	return &req, nil
}

// FulfillOtpRequest records the administrator-supplied code. The request
// completes exactly when the code is non-empty; an empty code is stored
// as supplied and the status is left alone, and a completed request
// never reverts to pending.
func (s *Store) FulfillOtpRequest(ctx context.Context, id int, code string) (*domain.OtpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.otpRequests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}

	req.AdminCode = code
	if code != "" {
		req.Status = domain.OtpRequestCompleted
	}
	s.otpRequests[id] = req
	return &req, nil
}

func (s *Store) ListOtpRequests(ctx context.Context) ([]domain.OtpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reqs := make([]domain.OtpRequest, 0, len(s.otpRequests))
	for id := 1; id < s.nextOtpRequestID; id++ {
		reqs = append(reqs, s.otpRequests[id])
	}
	return reqs, nil
}

func (s *Store) ListOtpRequestsByUser(ctx context.Context, userID int) ([]domain.OtpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reqs := make([]domain.OtpRequest, 0)
	for id := 1; id < s.nextOtpRequestID; id++ {
		if req := s.otpRequests[id]; req.UserID == userID {
			reqs = append(reqs, req)
		}
	}
	return reqs, nil
}
