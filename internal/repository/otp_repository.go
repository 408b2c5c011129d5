package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrOTPNotFound is returned when no live code exists for an email.
var ErrOTPNotFound = errors.New("otp not found")

// OTPEntry is a stored verification code and its failed attempt count.
type OTPEntry struct {
	Code     string
	Attempts int
}

// OTPRepository keeps teacher email verification codes in Redis hashes with a TTL.
type OTPRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewOTPRepository constructs an OTPRepository.
func NewOTPRepository(client redis.UniversalClient, prefix string) *OTPRepository {
	return &OTPRepository{client: client, prefix: prefix}
}

// Save replaces any code for email and resets the attempt counter.
func (r *OTPRepository) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	key := r.key(email)
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		p.HSet(ctx, key, "code", code, "attempts", 0)
		p.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save otp: %w", err)
	}
	return nil
}

// Get returns the live entry for email or ErrOTPNotFound.
func (r *OTPRepository) Get(ctx context.Context, email string) (*OTPEntry, error) {
	var entry struct {
		Code     string `redis:"code"`
		Attempts int    `redis:"attempts"`
	}
	res := r.client.HGetAll(ctx, r.key(email))
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("load otp: %w", err)
	}
	if len(res.Val()) == 0 {
		return nil, ErrOTPNotFound
	}
	if err := res.Scan(&entry); err != nil {
		return nil, fmt.Errorf("decode otp: %w", err)
	}
	return &OTPEntry{Code: entry.Code, Attempts: entry.Attempts}, nil
}

// IncrementAttempts records a failed verification and returns the new count.
func (r *OTPRepository) IncrementAttempts(ctx context.Context, email string) (int, error) {
	n, err := r.client.HIncrBy(ctx, r.key(email), "attempts", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("increment otp attempts: %w", err)
	}
	return int(n), nil
}

// Delete drops the code for email.
func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, r.key(email)).Err(); err != nil {
		return fmt.Errorf("delete otp: %w", err)
	}
	return nil
}

func (r *OTPRepository) key(email string) string {
	return r.prefix + strings.ToLower(strings.TrimSpace(email))
}
