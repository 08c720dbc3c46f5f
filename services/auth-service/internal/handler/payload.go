package handler

import "github.com/depang/shopping-mall-api/services/auth-service/internal/model"

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"required,oneof=USER ADMIN"`
	AccountID string `json:"account_id" validate:"required"`
}

type registerResponse struct {
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	AccountID string     `json:"account_id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyUserResponse struct {
	AccountID string `json:"account_id"`
}

type changePasswordRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type requestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Code        string `json:"code"         validate:"required,len=4,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
