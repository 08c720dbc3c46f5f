package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/auth-service/internal/config"
	"github.com/depang/shopping-mall-api/services/auth-service/internal/repository"
	"github.com/depang/shopping-mall-api/shared/security"
)

// NotificationGateway delivers a verification code to a user. A nil error
// means the message was accepted for delivery.
type NotificationGateway interface {
	SendVerificationCode(email, subject, body string) error
}

// PasswordResetUsecase defines the business logic for the verification-code
// recovery flow.
type PasswordResetUsecase interface {
	// RequestPasswordReset generates a verification code, delivers it to the
	// email address and stores it only once delivery succeeded.
	RequestPasswordReset(ctx context.Context, email string) error

	// VerifyCodeAndResetPassword checks the supplied code against the stored
	// one and replaces the credential's password hash. The code is consumed
	// and cannot be used again.
	VerifyCodeAndResetPassword(ctx context.Context, email, code, newPassword string) error
}

var (
	ErrCodeNotFound = errors.New("verification code not found")
	ErrCodeMismatch = errors.New("verification code does not match")
)

type passwordResetUsecase struct {
	credentialRepo repository.CredentialRepository
	codeRepo       repository.VerificationCodeRepository
	notifier       NotificationGateway
	authServiceCfg *config.AuthServiceConfig
	logger         *zerolog.Logger
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
func NewPasswordResetUsecase(
	credentialRepo repository.CredentialRepository,
	codeRepo repository.VerificationCodeRepository,
	notifier NotificationGateway,
	authServiceCfg *config.AuthServiceConfig,
	logger *zerolog.Logger,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		credentialRepo: credentialRepo,
		codeRepo:       codeRepo,
		notifier:       notifier,
		authServiceCfg: authServiceCfg,
		logger:         logger,
	}
}

func (u *passwordResetUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	code, err := generateVerificationCode()
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to generate verification code")
		return err
	}

	subject := "Password reset verification code"
	body := fmt.Sprintf(
		"Your password reset verification code is %s. It expires in %s.",
		code, u.authServiceCfg.VerificationCodeTTL,
	)

	// Deliver before persisting. If the user never received the code there
	// must be no live code left on our side.
	if err := u.notifier.SendVerificationCode(email, subject, body); err != nil {
		u.logger.Error().Err(err).Str("email", email).Msg("failed to deliver verification code")
		return err
	}

	if err := u.codeRepo.SaveCode(ctx, email, code); err != nil {
		u.logger.Error().Err(err).Str("email", email).Msg("failed to store verification code")
		return err
	}

	return nil
}

func (u *passwordResetUsecase) VerifyCodeAndResetPassword(ctx context.Context, email, code, newPassword string) error {
	if _, err := u.credentialRepo.GetCredentialByEmail(ctx, email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCredentialNotFound
		}

		return err
	}

	storedCode, err := u.codeRepo.GetCode(ctx, email)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCodeNotFound
		}

		return err
	}

	if storedCode != code {
		return ErrCodeMismatch
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Update the hash before deleting the code. If the delete fails the
	// account still has a working password and the code dies with its TTL.
	if err := u.credentialRepo.UpdatePasswordHash(ctx, email, passwordHash); err != nil {
		return err
	}

	if err := u.codeRepo.DeleteCode(ctx, email); err != nil {
		u.logger.Error().Err(err).Str("email", email).Msg("failed to delete consumed verification code")
		return err
	}

	return nil
}

// generateVerificationCode draws a 4 digit code uniformly from 0000 to 9999.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%04d", n.Int64()), nil
}
