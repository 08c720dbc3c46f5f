package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/auth-service/internal/config"
	"github.com/depang/shopping-mall-api/services/auth-service/internal/model"
	"github.com/depang/shopping-mall-api/services/auth-service/internal/repository"
	authtypes "github.com/depang/shopping-mall-api/services/auth-service/pkg/types"
	"github.com/depang/shopping-mall-api/shared/auth"
	"github.com/depang/shopping-mall-api/shared/security"
)

// AuthUsecase defines the business logic for credential registration and
// password management.
type AuthUsecase interface {
	// Register creates a credential for a new email address.
	Register(ctx context.Context, params RegisterParams) (*model.Credential, error)

	// VerifyUser checks the email/password pair and returns the linked
	// account identifier.
	VerifyUser(ctx context.Context, email, password string) (string, error)

	// Login verifies the credential and issues access and refresh tokens.
	Login(ctx context.Context, params LoginParams) (*authtypes.Tokens, error)

	// ChangePassword replaces the stored hash after checking the old password.
	ChangePassword(ctx context.Context, params ChangePasswordParams) error

	// DeleteAccount is reserved for identity teardown. Account withdrawal is
	// handled by the user service; this operation is not implemented.
	DeleteAccount(ctx context.Context, accountID string) error
}

// RegisterParams defines the parameters for credential registration.
type RegisterParams struct {
	Email     string
	Password  string
	Role      model.Role
	AccountID string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// ChangePasswordParams defines the parameters for a password change.
type ChangePasswordParams struct {
	Email       string
	OldPassword string
	NewPassword string
}

var (
	ErrCredentialAlreadyExists = errors.New("credential already exists for email")
	ErrCredentialNotFound      = errors.New("credential not found")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrNotImplemented          = errors.New("operation not implemented")
)

type authUsecase struct {
	credentialRepo repository.CredentialRepository
	jwtAuth        auth.JWTAuthenticator
	authServiceCfg *config.AuthServiceConfig
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	credentialRepo repository.CredentialRepository,
	jwtAuth auth.JWTAuthenticator,
	authServiceCfg *config.AuthServiceConfig,
) AuthUsecase {
	return &authUsecase{
		credentialRepo: credentialRepo,
		jwtAuth:        jwtAuth,
		authServiceCfg: authServiceCfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.Credential, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	credential, err := u.credentialRepo.CreateCredential(ctx, &model.Credential{
		Email:        params.Email,
		PasswordHash: passwordHash,
		Role:         params.Role,
		AccountID:    params.AccountID,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrCredentialAlreadyExists
		}

		return nil, err
	}

	return credential, nil
}

func (u *authUsecase) VerifyUser(ctx context.Context, email, password string) (string, error) {
	credential, err := u.credentialRepo.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrCredentialNotFound
		}

		return "", err
	}

	if ok, err := security.VerifyPassword(password, credential.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidPassword
	}

	return credential.AccountID, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*authtypes.Tokens, error) {
	credential, err := u.credentialRepo.GetCredentialByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCredentialNotFound
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, credential.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidPassword
	}

	accessToken, err := u.generateToken(
		credential,
		u.authServiceCfg.Token.AccessTokenSecret,
		u.authServiceCfg.Token.AccessTokenExpiresIn,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.generateToken(
		credential,
		u.authServiceCfg.Token.RefreshTokenSecret,
		u.authServiceCfg.Token.RefreshTokenExpiresIn,
	)
	if err != nil {
		return nil, err
	}

	return &authtypes.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, params ChangePasswordParams) error {
	credential, err := u.credentialRepo.GetCredentialByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCredentialNotFound
		}

		return err
	}

	if ok, err := security.VerifyPassword(params.OldPassword, credential.PasswordHash); err != nil {
		return err
	} else if !ok {
		return ErrInvalidPassword
	}

	passwordHash, err := security.HashPassword(params.NewPassword)
	if err != nil {
		return err
	}

	return u.credentialRepo.UpdatePasswordHash(ctx, params.Email, passwordHash)
}

func (u *authUsecase) DeleteAccount(ctx context.Context, accountID string) error {
	return ErrNotImplemented
}

func (u *authUsecase) generateToken(
	credential *model.Credential,
	secret string,
	expiresIn time.Duration,
) (string, error) {
	now := time.Now()
	claims := authtypes.JWTClaims{
		AccountID: credential.AccountID,
		Email:     credential.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    u.authServiceCfg.Token.Issuer,
			Audience:  jwt.ClaimStrings{u.authServiceCfg.Token.Issuer},
			Subject:   credential.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := u.jwtAuth.GenerateToken(claims, secret)
	if err != nil {
		return "", err
	}

	return token, nil
}
