package usecase_test

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/auth-service/internal/model"
)

// fakeCredentialRepo is an in-memory CredentialRepository keyed by email. It
// reports the same driver errors as the Mongo implementation.
type fakeCredentialRepo struct {
	credentials map[string]*model.Credential
	failWith    error
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{credentials: make(map[string]*model.Credential)}
}

func (f *fakeCredentialRepo) CreateCredential(
	_ context.Context,
	credential *model.Credential,
) (*model.Credential, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	if _, ok := f.credentials[credential.Email]; ok {
		return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	}

	credential.ID = bson.NewObjectID()
	f.credentials[credential.Email] = credential

	return credential, nil
}

func (f *fakeCredentialRepo) GetCredentialByEmail(_ context.Context, email string) (*model.Credential, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	credential, ok := f.credentials[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return credential, nil
}

func (f *fakeCredentialRepo) UpdatePasswordHash(_ context.Context, email, passwordHash string) error {
	if f.failWith != nil {
		return f.failWith
	}

	credential, ok := f.credentials[email]
	if !ok {
		return mongo.ErrNoDocuments
	}

	credential.PasswordHash = passwordHash

	return nil
}

// fakeCodeRepo is an in-memory VerificationCodeRepository keyed by email.
type fakeCodeRepo struct {
	codes    map[string]string
	saveErr  error
	delErr   error
	deleted  []string
	lastSave string
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: make(map[string]string)}
}

func (f *fakeCodeRepo) SaveCode(_ context.Context, email, code string) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.codes[email] = code
	f.lastSave = code

	return nil
}

func (f *fakeCodeRepo) GetCode(_ context.Context, email string) (string, error) {
	code, ok := f.codes[email]
	if !ok {
		return "", redis.Nil
	}

	return code, nil
}

func (f *fakeCodeRepo) DeleteCode(_ context.Context, email string) error {
	if f.delErr != nil {
		return f.delErr
	}

	delete(f.codes, email)
	f.deleted = append(f.deleted, email)

	return nil
}

// fakeNotifier records sent verification codes and can be made to fail
// delivery.
type fakeNotifier struct {
	sendErr error
	sentTo  []string
	bodies  []string
}

func (f *fakeNotifier) SendVerificationCode(email, _, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}

	f.sentTo = append(f.sentTo, email)
	f.bodies = append(f.bodies, body)

	return nil
}
