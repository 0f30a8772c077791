package store

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrRequestNotFound     = errors.New("otp request not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidReference    = errors.New("utr reference must not be empty")
	ErrInvalidAppName      = errors.New("app name must not be empty")
	ErrInvalidDecision     = errors.New("decision must be approved or rejected")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTransactionResolved = errors.New("transaction already resolved")
)
