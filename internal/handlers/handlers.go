package handlers

import (
	"net/http"

	authhandlers "github.com/otpdesk/otpdesk/internal/handlers/auth"
	otphandlers "github.com/otpdesk/otpdesk/internal/handlers/otp"
	txnhandlers "github.com/otpdesk/otpdesk/internal/handlers/transactions"
	"github.com/otpdesk/otpdesk/internal/observability"
	"github.com/otpdesk/otpdesk/internal/service"
	"github.com/otpdesk/otpdesk/pkg/auth"
	"github.com/otpdesk/otpdesk/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type OtpHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Fulfill(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	TransactionHandler TransactionHandler
	OtpHandler         OtpHandler

	authService authhandlers.Service
	jwtService  auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		TransactionHandler: txnhandlers.New(s.WalletService),
		OtpHandler:         otphandlers.New(s.OtpService),
		authService:        s.AuthService,
		jwtService:         jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Handle("/metrics", observability.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", h.AuthHandler.Signup)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/auth/me", h.AuthHandler.Me)
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", h.TransactionHandler.Create)
				r.Get("/", h.TransactionHandler.List)
			})
			r.Route("/otp-requests", func(r chi.Router) {
				r.Post("/", h.OtpHandler.Create)
				r.Get("/", h.OtpHandler.List)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.adminOnly)
				r.Get("/transactions", h.TransactionHandler.ListAll)
				r.Post("/transactions/{id}", h.TransactionHandler.Resolve)
				r.Get("/otp-requests", h.OtpHandler.ListAll)
				r.Post("/otp-requests/{id}", h.OtpHandler.Fulfill)
			})
		})
	})

	return r
}

// adminOnly gates the admin group: the caller's user record is loaded
// and must carry the administrator flag.
func (h *Handlers) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(auth.UserIDKey).(int)

		user, err := h.authService.GetUser(r.Context(), userID)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !user.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
