package service

import (
	authhandlers "github.com/otpdesk/otpdesk/internal/handlers/auth"
	otphandlers "github.com/otpdesk/otpdesk/internal/handlers/otp"
	txnhandlers "github.com/otpdesk/otpdesk/internal/handlers/transactions"

	"github.com/otpdesk/otpdesk/internal/service/authservice"
	"github.com/otpdesk/otpdesk/internal/service/otpservice"
	"github.com/otpdesk/otpdesk/internal/service/walletservice"
	"github.com/otpdesk/otpdesk/internal/store"
	pkgauth "github.com/otpdesk/otpdesk/pkg/auth"
)

type Services struct {
	AuthService   authhandlers.Service
	WalletService txnhandlers.Service
	OtpService    otphandlers.Service
}

func New(st *store.Store, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(st, &pkgauth.HashService{}, jwtService)
	walletService := walletservice.New(st)
	otpService := otpservice.New(st)

	return &Services{
		AuthService:   authService,
		WalletService: walletService,
		OtpService:    otpService,
	}
}
