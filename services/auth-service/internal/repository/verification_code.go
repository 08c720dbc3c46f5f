package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// VerificationCodeRepository defines the interface for password-reset
// verification code storage. Absent codes surface as redis.Nil.
type VerificationCodeRepository interface {
	// SaveCode stores the code for the email, replacing any prior code.
	SaveCode(ctx context.Context, email, code string) error

	// GetCode retrieves the live code for the email.
	GetCode(ctx context.Context, email string) (string, error)

	// DeleteCode removes the code for the email.
	DeleteCode(ctx context.Context, email string) error
}

const verificationCodeKeyPrefix = "verification_code:"

type verificationCodeRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVerificationCodeRedisRepository creates a Redis-backed repository for
// verification codes. Codes expire after the given TTL; a TTL of zero keeps
// them until consumed.
func NewVerificationCodeRedisRepository(client *redis.Client, ttl time.Duration) VerificationCodeRepository {
	return &verificationCodeRedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *verificationCodeRedisRepository) SaveCode(ctx context.Context, email, code string) error {
	// Plain SET: a concurrent request for the same email is last-writer-wins.
	return r.client.Set(ctx, verificationCodeKeyPrefix+email, code, r.ttl).Err()
}

func (r *verificationCodeRedisRepository) GetCode(ctx context.Context, email string) (string, error) {
	return r.client.Get(ctx, verificationCodeKeyPrefix+email).Result()
}

func (r *verificationCodeRedisRepository) DeleteCode(ctx context.Context, email string) error {
	return r.client.Del(ctx, verificationCodeKeyPrefix+email).Err()
}
