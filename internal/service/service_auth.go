// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/utils"
	"github.com/MKhiriev/go-rest-resource/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost used for configured user passwords.
var passwordHashCost = bcrypt.DefaultCost

var validate = validator.New(validator.WithRequiredStructEnabled())

// authService is the concrete implementation of AuthService.
// Users come from configuration; their passwords are kept only as bcrypt
// hashes computed at construction.
type authService struct {
	// users maps a login to the bcrypt hash of its password.
	users map[string][]byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService hashes the configured user passwords and returns an
// AuthService signing tokens with the configured key, issuer and lifetime.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.Server, logger *logger.Logger) (AuthService, error) {
	users := make(map[string][]byte, len(cfg.Users))
	for login, password := range cfg.Users {
		if login == "" || password == "" {
			return nil, fmt.Errorf("%w: empty login or password for user %q", ErrInvalidDataProvided, login)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password of user %q: %w", login, err)
		}
		users[login] = hash
	}

	logger.Info().Int("users", len(users)).Msg("auth service created")

	return &authService{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}, nil
}

// Login authenticates a configured user and issues a signed JWT for it.
//
// Returns:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrUnknownLogin if no user with this login is configured.
//   - ErrWrongPassword if the password does not match the stored hash.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validate.Struct(credentials); err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.Token{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	hash, ok := a.users[credentials.Login]
	if !ok {
		log.Error().Str("login", credentials.Login).Msg("unknown login")
		return models.Token{}, ErrUnknownLogin
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(credentials.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().Str("login", credentials.Login).Msg("wrong password")
			return models.Token{}, ErrWrongPassword
		}
		return models.Token{}, fmt.Errorf("error comparing password hash: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, credentials.Login, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
