package handler

import (
	"errors"
	"net/http"

	"github.com/depang/shopping-mall-api/services/auth-service/internal/usecase"
	"github.com/depang/shopping-mall-api/shared/httputil"
)

func (h *AuthHTTPHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req requestPasswordResetRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.passwordResetUsecase.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.logger.Error().Err(err).Msg("failed to request password reset")
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, nil)
}

func (h *AuthHTTPHandler) VerifyCodeAndResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.passwordResetUsecase.VerifyCodeAndResetPassword(r.Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		h.writeUsecaseError(w, err, "failed to reset password")
		return
	}

	httputil.WriteJSON(w, http.StatusNoContent, nil)
}

// writeUsecaseError maps usecase sentinel errors onto HTTP statuses; anything
// unexpected is logged and hidden behind a 500.
func (h *AuthHTTPHandler) writeUsecaseError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrCredentialAlreadyExists):
		httputil.WriteError(w, http.StatusConflict, "email is already registered")
	case errors.Is(err, usecase.ErrCredentialNotFound):
		httputil.WriteError(w, http.StatusNotFound, "credential not found")
	case errors.Is(err, usecase.ErrInvalidPassword):
		httputil.WriteError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, usecase.ErrCodeNotFound):
		httputil.WriteError(w, http.StatusNotFound, "verification code not found")
	case errors.Is(err, usecase.ErrCodeMismatch):
		httputil.WriteError(w, http.StatusBadRequest, "verification code does not match")
	case errors.Is(err, usecase.ErrNotImplemented):
		httputil.WriteError(w, http.StatusNotImplemented, "not implemented")
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
	}
}
