package otp

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
	Request(ctx context.Context, userID int, appName string) (*domain.OtpRequest, error)
	Fulfill(ctx context.Context, id int, code string) (*domain.OtpRequest, error)
	ListForUser(ctx context.Context, userID int) ([]domain.OtpRequest, error)
	ListAll(ctx context.Context) ([]domain.OtpRequest, error)
}

type OtpHandler struct {
	otpService Service
}

func New(otpService Service) *OtpHandler {
	return &OtpHandler{
		otpService: otpService,
	}
}

// Create purchases a verification code for the authenticated user.
func (h *OtpHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOtpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.otpService.Request(r.Context(), userID, req.AppName)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidAppName), errors.Is(err, store.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(request))
}

// List returns the authenticated user's request history.
func (h *OtpHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	reqs, err := h.otpService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch otp requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(reqs))
}

// ListAll returns every request. Admin only.
func (h *OtpHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.otpService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch otp requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTOs(reqs))
}

// Fulfill records the relayed code on a request. Admin only.
func (h *OtpHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var req dto.FulfillOtpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.otpService.Fulfill(r.Context(), id, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(request))
}

func toResponseDTO(req *domain.OtpRequest) dto.OtpRequestResponseDTO {
	return dto.OtpRequestResponseDTO{
		ID:           req.ID,
		UserID:       req.UserID,
		AppName:      req.AppName,
		Code:         req.Code,
		Status:       req.Status,
		MobileNumber: req.MobileNumber,
		AdminCode:    req.AdminCode,
		CreatedAt:    req.CreatedAt,
	}
}

func toResponseDTOs(reqs []domain.OtpRequest) []dto.OtpRequestResponseDTO {
	response := make([]dto.OtpRequestResponseDTO, len(reqs))
	for i := range reqs {
		response[i] = toResponseDTO(&reqs[i])
	}
	return response
}
