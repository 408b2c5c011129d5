package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("storage: invalid download token")
	// ErrTokenExpired is returned by Parse for tokens past their expiry.
	ErrTokenExpired = errors.New("storage: download token expired")
)

// SignedURLSigner issues HMAC-SHA256 download tokens binding a report id to a stored file.
// Token layout: base64url(id "\n" unix-expiry "\n" path) "." base64url(mac).
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSignedURLSigner returns a signer; ttl defaults to 24h.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SignedURLSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL reports how long issued tokens stay valid.
func (s *SignedURLSigner) TTL() time.Duration {
	return s.ttl
}

// Generate signs id and relPath.
func (s *SignedURLSigner) Generate(id, relPath string) (string, time.Time, error) {
	if id == "" || relPath == "" {
		return "", time.Time{}, fmt.Errorf("storage: id and path are required")
	}
	if strings.Contains(id, "\n") || strings.Contains(relPath, "\n") {
		return "", time.Time{}, fmt.Errorf("storage: id and path must be single-line")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("storage: signing secret missing")
	}
	expiresAt := s.now().Add(s.ttl).Truncate(time.Second)
	payload := strings.Join([]string{id, strconv.FormatInt(expiresAt.Unix(), 10), relPath}, "\n")
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(payload)) + "." + enc.EncodeToString(s.sign(payload)), expiresAt, nil
}

// Parse verifies token and returns its contents. allowExpired skips the expiry check so
// cleanup can still resolve the file of a stale token.
func (s *SignedURLSigner) Parse(token string, allowExpired bool) (id, relPath string, expiresAt time.Time, err error) {
	encPayload, encMAC, ok := strings.Cut(token, ".")
	if !ok {
		return "", "", time.Time{}, ErrInvalidToken
	}
	enc := base64.RawURLEncoding
	rawPayload, err := enc.DecodeString(encPayload)
	if err != nil {
		return "", "", time.Time{}, ErrInvalidToken
	}
	mac, err := enc.DecodeString(encMAC)
	if err != nil {
		return "", "", time.Time{}, ErrInvalidToken
	}
	if !hmac.Equal(mac, s.sign(string(rawPayload))) {
		return "", "", time.Time{}, ErrInvalidToken
	}

	parts := strings.SplitN(string(rawPayload), "\n", 3)
	if len(parts) != 3 {
		return "", "", time.Time{}, ErrInvalidToken
	}
	unix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", "", time.Time{}, ErrInvalidToken
	}
	expiresAt = time.Unix(unix, 0)
	if !allowExpired && s.now().After(expiresAt) {
		return "", "", time.Time{}, ErrTokenExpired
	}
	return parts[0], parts[2], expiresAt, nil
}

func (s *SignedURLSigner) sign(payload string) []byte {
	h := hmac.New(sha256.New, s.secret)
	_, _ = h.Write([]byte(payload))
	return h.Sum(nil)
}
