// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	errEmptyAuthorizationHeader   = errors.New("empty authorization header")
	errInvalidAuthorizationHeader = errors.New("invalid authorization header")
	errTokenExpired               = errors.New("token expired")
)

// issueToken signs an HS256 token for login. The subject is the login, the
// exp claim follows the backend clock.
func (b *Backend) issueToken(login string) (string, time.Time, error) {
	now := b.now()
	expiresAt := now.Add(b.tokenTTL)

	claims := &jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   login,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.signKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// parseToken validates signature, issuer and expiry and returns the login
// the token was issued for.
func (b *Backend) parseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return b.signKey, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(b.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errTokenExpired
		}
		return "", fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("empty subject")
	}
	return claims.Subject, nil
}

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errEmptyAuthorizationHeader
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// hashAuth is what the backend stores instead of the client auth hash.
func (b *Backend) hashAuth(authHash string) string {
	h := hmac.New(sha256.New, b.pepper)
	h.Write([]byte(authHash))
	return hex.EncodeToString(h.Sum(nil))
}

func (b *Backend) authHashMatches(stored, presented string) bool {
	return hmac.Equal([]byte(stored), []byte(b.hashAuth(presented)))
}
