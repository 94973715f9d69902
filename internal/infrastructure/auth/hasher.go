package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/config"
)

// NewPasswordHasher returns the hasher for the configured scheme. Unknown
// schemes fall back to sha256 so existing accounts keep working.
func NewPasswordHasher(cfg config.PasswordConfig) user.PasswordHasher {
	if strings.EqualFold(cfg.Scheme, config.PasswordSchemeBcrypt) {
		return NewBcryptPasswordHasher(cfg.BcryptCost)
	}
	return NewSHA256PasswordHasher()
}

// SHA256PasswordHasher stores the unsalted hex digest.
type SHA256PasswordHasher struct{}

func NewSHA256PasswordHasher() *SHA256PasswordHasher {
	return &SHA256PasswordHasher{}
}

func (h *SHA256PasswordHasher) Hash(password string) (string, error) {
	return sha256Hex(password), nil
}

func (h *SHA256PasswordHasher) Verify(password, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(sha256Hex(password)), []byte(strings.ToLower(hash))) == 1
}

func sha256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// BcryptPasswordHasher also accepts sha256 digests written before the scheme
// was switched.
type BcryptPasswordHasher struct {
	cost   int
	legacy SHA256PasswordHasher
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) bool {
	if !strings.HasPrefix(hash, "$2") {
		return h.legacy.Verify(password, hash)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
