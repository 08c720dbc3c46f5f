package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depang/shopping-mall-api/services/auth-service/internal/model"
	"github.com/depang/shopping-mall-api/services/auth-service/internal/usecase"
)

func newPasswordResetUsecase(
	credentialRepo *fakeCredentialRepo,
	codeRepo *fakeCodeRepo,
	notifier *fakeNotifier,
) usecase.PasswordResetUsecase {
	logger := zerolog.Nop()

	return usecase.NewPasswordResetUsecase(credentialRepo, codeRepo, notifier, testConfig(), &logger)
}

func registerCredential(t *testing.T, credentialRepo *fakeCredentialRepo, email, password string) {
	t.Helper()

	authUsecase := newAuthUsecase(credentialRepo)
	_, err := authUsecase.Register(context.Background(), usecase.RegisterParams{
		Email:     email,
		Password:  password,
		Role:      model.RoleUser,
		AccountID: "account-1",
	})
	require.NoError(t, err)
}

func TestRequestPasswordReset(t *testing.T) {
	credentialRepo := newFakeCredentialRepo()
	codeRepo := newFakeCodeRepo()
	notifier := &fakeNotifier{}
	resetUsecase := newPasswordResetUsecase(credentialRepo, codeRepo, notifier)

	err := resetUsecase.RequestPasswordReset(context.Background(), "a@x.com")
	require.NoError(t, err)

	require.Equal(t, []string{"a@x.com"}, notifier.sentTo)

	code, ok := codeRepo.codes["a@x.com"]
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), code)
	assert.Contains(t, notifier.bodies[0], code)
}

func TestRequestPasswordReset_OverwritesPriorCode(t *testing.T) {
	credentialRepo := newFakeCredentialRepo()
	codeRepo := newFakeCodeRepo()
	notifier := &fakeNotifier{}
	resetUsecase := newPasswordResetUsecase(credentialRepo, codeRepo, notifier)

	require.NoError(t, resetUsecase.RequestPasswordReset(context.Background(), "a@x.com"))
	first := codeRepo.codes["a@x.com"]

	require.NoError(t, resetUsecase.RequestPasswordReset(context.Background(), "a@x.com"))
	second := codeRepo.codes["a@x.com"]

	// Only the latest code is live; the first is unconditionally replaced.
	assert.Equal(t, second, codeRepo.lastSave)
	assert.Len(t, codeRepo.codes, 1)
	_ = first
}

func TestRequestPasswordReset_DeliveryFailureLeavesNoCode(t *testing.T) {
	credentialRepo := newFakeCredentialRepo()
	codeRepo := newFakeCodeRepo()
	notifier := &fakeNotifier{sendErr: errors.New("smtp unavailable")}
	resetUsecase := newPasswordResetUsecase(credentialRepo, codeRepo, notifier)

	err := resetUsecase.RequestPasswordReset(context.Background(), "a@x.com")
	require.Error(t, err)

	assert.Empty(t, codeRepo.codes)

	registerCredential(t, credentialRepo, "a@x.com", "old-password")

	err = resetUsecase.VerifyCodeAndResetPassword(context.Background(), "a@x.com", "0000", "new-password")
	assert.ErrorIs(t, err, usecase.ErrCodeNotFound)
}

func TestVerifyCodeAndResetPassword(t *testing.T) {
	credentialRepo := newFakeCredentialRepo()
	codeRepo := newFakeCodeRepo()
	notifier := &fakeNotifier{}
	resetUsecase := newPasswordResetUsecase(credentialRepo, codeRepo, notifier)

	registerCredential(t, credentialRepo, "a@x.com", "old-password")
	require.NoError(t, resetUsecase.RequestPasswordReset(context.Background(), "a@x.com"))
	code := codeRepo.codes["a@x.com"]

	err := resetUsecase.VerifyCodeAndResetPassword(context.Background(), "a@x.com", code, "new-password")
	require.NoError(t, err)

	authUsecase := newAuthUsecase(credentialRepo)
	_, err = authUsecase.VerifyUser(context.Background(), "a@x.com", "new-password")
	assert.NoError(t, err)

	// The code is consumed: replaying it must fail.
	err = resetUsecase.VerifyCodeAndResetPassword(context.Background(), "a@x.com", code, "another-password")
	assert.ErrorIs(t, err, usecase.ErrCodeNotFound)
}

func TestVerifyCodeAndResetPassword_WrongCode(t *testing.T) {
	credentialRepo := newFakeCredentialRepo()
	codeRepo := newFakeCodeRepo()
	notifier := &fakeNotifier{}
	resetUsecase := newPasswordResetUsecase(credentialRepo, codeRepo, notifier)

	registerCredential(t, credentialRepo, "a@x.com", "old-password")
	require.NoError(t, resetUsecase.RequestPasswordReset(context.Background(), "a@x.com"))

	code := codeRepo.codes["a@x.com"]
	wrong := "0000"
	if code == "0000" {
		wrong = "0001"
	}

	err := resetUsecase.VerifyCodeAndResetPassword(context.Background(), "a@x.com", wrong, "new-password")
	assert.ErrorIs(t, err, usecase.ErrCodeMismatch)

	// Old password must still work after a rejected attempt.
	authUsecase := newAuthUsecase(credentialRepo)
	_, err = authUsecase.VerifyUser(context.Background(), "a@x.com", "old-password")
	assert.NoError(t, err)
}

func TestVerifyCodeAndResetPassword_UnknownEmail(t *testing.T) {
	resetUsecase := newPasswordResetUsecase(newFakeCredentialRepo(), newFakeCodeRepo(), &fakeNotifier{})

	err := resetUsecase.VerifyCodeAndResetPassword(context.Background(), "missing@x.com", "1234", "new-password")
	assert.ErrorIs(t, err, usecase.ErrCredentialNotFound)
}

func TestVerifyCodeAndResetPassword_NoLiveCode(t *testing.T) {
	credentialRepo := newFakeCredentialRepo()
	resetUsecase := newPasswordResetUsecase(credentialRepo, newFakeCodeRepo(), &fakeNotifier{})

	registerCredential(t, credentialRepo, "a@x.com", "old-password")

	err := resetUsecase.VerifyCodeAndResetPassword(context.Background(), "a@x.com", "1234", "new-password")
	assert.ErrorIs(t, err, usecase.ErrCodeNotFound)
}
