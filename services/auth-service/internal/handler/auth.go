package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/depang/shopping-mall-api/services/auth-service/internal/model"
	"github.com/depang/shopping-mall-api/services/auth-service/internal/usecase"
	"github.com/depang/shopping-mall-api/shared/httputil"
	"github.com/depang/shopping-mall-api/shared/validator"
)

// AuthHTTPHandler serves the credential and password-recovery endpoints.
type AuthHTTPHandler struct {
	authUsecase          usecase.AuthUsecase
	passwordResetUsecase usecase.PasswordResetUsecase
	validator            *validator.Validator
	logger               *zerolog.Logger
}

// NewAuthHTTPHandler creates a new AuthHTTPHandler.
func NewAuthHTTPHandler(
	authUsecase usecase.AuthUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		authUsecase:          authUsecase,
		passwordResetUsecase: passwordResetUsecase,
		validator:            validator,
		logger:               logger,
	}
}

// Routes returns the router for the auth API.
func (h *AuthHTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/verify", h.VerifyUser)
	r.Post("/password/change", h.ChangePassword)
	r.Post("/password/reset/request", h.RequestPasswordReset)
	r.Post("/password/reset/verify", h.VerifyCodeAndResetPassword)

	return r
}

func (h *AuthHTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	credential, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		Role:      model.Role(req.Role),
		AccountID: req.AccountID,
	})
	if err != nil {
		h.writeUsecaseError(w, err, "failed to register credential")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, registerResponse{
		Email:     credential.Email,
		Role:      credential.Role,
		AccountID: credential.AccountID,
	})
}

func (h *AuthHTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeUsecaseError(w, err, "failed to login")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, tokens)
}

func (h *AuthHTTPHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	var req verifyUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	accountID, err := h.authUsecase.VerifyUser(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to verify user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, verifyUserResponse{AccountID: accountID})
}

func (h *AuthHTTPHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.authUsecase.ChangePassword(r.Context(), usecase.ChangePasswordParams{
		Email:       req.Email,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.writeUsecaseError(w, err, "failed to change password")
		return
	}

	httputil.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *AuthHTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
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
