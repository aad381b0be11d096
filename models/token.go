// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token issued by the mock backend.
//
// It embeds [jwt.RegisteredClaims] for standard claim access (subject, expiry,
// issuer). SignedString holds the compact serialized form that clients store
// and send back in the x-access-token header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Login is the account name taken from the "sub" claim.
	Login string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Credentials is the login payload accepted by the mock backend.
type Credentials struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccessTokenResponse is returned by a successful login. The field name matches
// the default token property name so the token can be stored under the same key.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
