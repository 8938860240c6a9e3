package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme как пароль хранится и проверяется.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainPasswords хранит пароль как есть и сравнивает на точное совпадение.
// Совместимо с существующими данными, но это дефект безопасности: включайте bcrypt.
type PlainPasswords struct{}

func (PlainPasswords) Hash(password string) (string, error) { return password, nil }

func (PlainPasswords) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptPasswords) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewPasswordScheme по имени из конфигурации: "plain" (по умолчанию) или "bcrypt".
func NewPasswordScheme(name string) (PasswordScheme, error) {
	switch name {
	case "", "plain":
		return PlainPasswords{}, nil
	case "bcrypt":
		return BcryptPasswords{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}
