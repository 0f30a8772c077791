package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/otpdesk/otpdesk/internal/domain"
	"github.com/otpdesk/otpdesk/internal/dto"
	"github.com/otpdesk/otpdesk/internal/store"
	"github.com/otpdesk/otpdesk/pkg/auth"
	"github.com/otpdesk/otpdesk/pkg/utils"
)

type Service interface {
	CreateDeposit(ctx context.Context, userID, amount int, utr string) (*domain.Transaction, error)
	Resolve(ctx context.Context, id int, decision string) (*domain.Transaction, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Transaction, error)
	ListAll(ctx context.Context) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	walletService Service
}

func New(walletService Service) *TransactionHandler {
	return &TransactionHandler{
		walletService: walletService,
	}
}

// Create records a cash-deposit claim for the authenticated user.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.walletService.CreateDeposit(r.Context(), userID, req.Amount, req.UTRNumber)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidAmount), errors.Is(err, store.ErrInvalidReference):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(txn))
}

// List returns the authenticated user's own deposit claims.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txns, err := h.walletService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(txns))
}

// ListAll returns every deposit claim. Admin only.
func (h *TransactionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	txns, err := h.walletService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(txns))
}

// Resolve approves or rejects a pending deposit claim. Admin only.
func (h *TransactionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req dto.ResolveTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.walletService.Resolve(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidDecision):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, store.ErrTransactionResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(txn))
}

func toResponseDTO(txn *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:        txn.ID,
		UserID:    txn.UserID,
		Amount:    txn.Amount,
		UTRNumber: txn.UTRNumber,
		Status:    txn.Status,
		CreatedAt: txn.CreatedAt,
	}
}

func toResponseDTOs(txns []domain.Transaction) []dto.TransactionResponseDTO {
	response := make([]dto.TransactionResponseDTO, len(txns))
	for i := range txns {
		response[i] = toResponseDTO(&txns[i])
	}
	return response
}
