package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the credentials and token settings for serve mode.
// The API is single-tenant: one admin login, verified against a bcrypt
// hash supplied through the environment.
type AuthConfig struct {
	Secret          string
	ExpirationHours int
	BcryptCost      int
	AdminUser       string
	AdminHash       string
}

// NewAuthConfig reads auth settings from the environment.
// JWT_SECRET and ADMIN_PASSWORD_HASH are required; JWT_EXPIRATION_HOURS
// defaults to 24, BCRYPT_COST to 12, ADMIN_USER to "admin".
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}
	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "admin"
	}

	cfg := &AuthConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
		BcryptCost:      cost,
		AdminUser:       adminUser,
		AdminHash:       adminHash,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AuthConfig) normalize() error {
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword hashes a password with bcrypt at the configured cost.
// Used by the hash-password helper command to produce ADMIN_PASSWORD_HASH.
func (c *AuthConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyAdmin checks a login attempt against the configured admin credential.
func (c *AuthConfig) VerifyAdmin(user, pw string) bool {
	if user != c.AdminUser {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.AdminHash), []byte(pw)) == nil
}
