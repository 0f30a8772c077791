package domain

import "time"

type User struct {
	ID           int
	Username     string
	PasswordHash string
	Balance      int
	IsAdmin      bool
}

// Transaction is a user-submitted claim of an external cash deposit.
// The claimed amount is credited to the user only when an administrator
// approves the claim.
type Transaction struct {
	ID        int
	UserID    int
	Amount    int
	UTRNumber string
	Status    string
	CreatedAt time.Time
}

// OtpRequest is a purchased verification-code request. The store
// generates Code and assigns MobileNumber at creation; AdminCode is
// filled in by an administrator when the code has been relayed.
type OtpRequest struct {
	ID           int
	UserID       int
	AppName      string
	Code         string
	Status       string
	MobileNumber string
	AdminCode    string
	CreatedAt    time.Time
}

const (
	TransactionPending  string = "pending"
	TransactionApproved string = "approved"
	TransactionRejected string = "rejected"
)

const (
	OtpRequestPending   string = "pending"
	OtpRequestCompleted string = "completed"
)
