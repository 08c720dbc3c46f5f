package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
	"github.com/depang/shopping-mall-api/services/user-service/internal/usecase"
	"github.com/depang/shopping-mall-api/shared/httputil"
	"github.com/depang/shopping-mall-api/shared/validator"
)

// AccountHTTPHandler serves the account lifecycle and admin search endpoints.
type AccountHTTPHandler struct {
	accountUsecase usecase.AccountUsecase
	validator      *validator.Validator
	adminOnly      func(http.Handler) http.Handler
	logger         *zerolog.Logger
}

// NewAccountHTTPHandler creates a new AccountHTTPHandler. The adminOnly
// middleware guards the admin search and bulk delete routes.
func NewAccountHTTPHandler(
	accountUsecase usecase.AccountUsecase,
	validator *validator.Validator,
	adminOnly func(http.Handler) http.Handler,
	logger *zerolog.Logger,
) *AccountHTTPHandler {
	return &AccountHTTPHandler{
		accountUsecase: accountUsecase,
		validator:      validator,
		adminOnly:      adminOnly,
		logger:         logger,
	}
}

// Routes returns the router for the user API.
func (h *AccountHTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Get("/list", h.GetProfilesByAccountIDs)

	r.Group(func(r chi.Router) {
		r.Use(h.adminOnly)
		r.Get("/find", h.ListAccounts)
		r.Delete("/list", h.DeleteAccounts)
	})

	r.Route("/{accountID}", func(r chi.Router) {
		r.Get("/", h.GetAccount)
		r.Delete("/", h.DeleteAccount)
		r.Patch("/address", h.UpdateAddress)
	})

	return r
}

func (h *AccountHTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.accountUsecase.Register(r.Context(), usecase.RegisterAccountParams{
		Email:          req.Email,
		EmployeeNumber: req.EmployeeNumber,
		Name:           req.Name,
		JoinDate:       req.JoinDate,
	})
	if err != nil {
		h.writeUsecaseError(w, err, "failed to register account")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, registerResponse{
		AccountID: account.ID.Hex(),
		Email:     account.Email,
		Status:    account.Status,
	})
}

func (h *AccountHTTPHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	detail, err := h.accountUsecase.GetAccount(r.Context(), accountID)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to get account")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, accountDetailResponse{
		AccountID:      detail.Account.ID.Hex(),
		Email:          detail.Account.Email,
		Status:         detail.Account.Status,
		EmployeeNumber: detail.Profile.EmployeeNumber,
		Name:           detail.Profile.Name,
		JoinDate:       detail.Profile.JoinDate,
		Address: addressResponse{
			PhoneNumber:   detail.Profile.PhoneNumber,
			ZipCode:       detail.Profile.ZipCode,
			Address:       detail.Profile.Address,
			DetailAddress: detail.Profile.DetailAddress,
		},
	})
}

func (h *AccountHTTPHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req withdrawRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.accountUsecase.DeleteAccount(r.Context(), accountID, usecase.WithdrawParams{
		Reason:  model.WithdrawalReason(req.Reason),
		Message: req.Message,
	})
	if err != nil {
		h.writeUsecaseError(w, err, "failed to withdraw account")
		return
	}

	httputil.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *AccountHTTPHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req updateAddressRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.accountUsecase.UpdateAddress(r.Context(), accountID, usecase.UpdateAddressParams{
		PhoneNumber:   req.PhoneNumber,
		ZipCode:       req.ZipCode,
		Address:       req.Address,
		DetailAddress: req.DetailAddress,
	})
	if err != nil {
		h.writeUsecaseError(w, err, "failed to update address")
		return
	}

	httputil.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *AccountHTTPHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	params := usecase.ListAccountsParams{
		Category: usecase.SearchCategory(r.URL.Query().Get("category")),
		Keyword:  r.URL.Query().Get("keyword"),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		params.Limit = limit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		params.Offset = offset
	}

	profiles, err := h.accountUsecase.ListAccounts(r.Context(), params)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to list accounts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newProfileResponses(profiles))
}

func (h *AccountHTTPHandler) DeleteAccounts(w http.ResponseWriter, r *http.Request) {
	var req deleteAccountsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.accountUsecase.DeleteAccounts(r.Context(), req.AccountIDs); err != nil {
		h.writeUsecaseError(w, err, "failed to delete accounts")
		return
	}

	httputil.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *AccountHTTPHandler) GetProfilesByAccountIDs(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("account_ids")
	if raw == "" {
		httputil.WriteError(w, http.StatusBadRequest, "account_ids is required")
		return
	}

	profiles, err := h.accountUsecase.GetProfilesByAccountIDs(r.Context(), strings.Split(raw, ","))
	if err != nil {
		h.writeUsecaseError(w, err, "failed to get profiles")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newProfileResponses(profiles))
}

func (h *AccountHTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := httputil.DecodeJSON(r, req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// writeUsecaseError maps usecase sentinel errors onto HTTP statuses; anything
// unexpected is logged and hidden behind a 500.
func (h *AccountHTTPHandler) writeUsecaseError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrAccountAlreadyExists):
		httputil.WriteError(w, http.StatusConflict, "email is already registered")
	case errors.Is(err, usecase.ErrAccountNotFound):
		httputil.WriteError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, usecase.ErrProfileNotFound):
		httputil.WriteError(w, http.StatusNotFound, "profile not found")
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
	}
}
