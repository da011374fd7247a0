// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	ErrEmptyPassphrase   = errors.New("empty passphrase")
)

// NewSubmissionID returns a random UUID used as a submission primary key.
// It doubles as the device cookie value.
func NewSubmissionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate submission ID: %w", err)
	}
	return id.String(), nil
}

// NewSessionID returns a random UUID for an admin session.
func NewSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return id.String(), nil
}

// HashPassphrase returns a bcrypt hash of the admin passphrase.
func HashPassphrase(passphrase string, cost int) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(hash), nil
}

// CheckPassphrase compares a candidate against a bcrypt hash.
// Any mismatch or malformed hash yields ErrInvalidPassphrase.
func CheckPassphrase(hash, candidate string) error {
	if candidate == "" || hash == "" {
		return ErrInvalidPassphrase
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)); err != nil {
		return ErrInvalidPassphrase
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for rate limit keys
	return hex.EncodeToString(sum[:8])
}
