// Package jwtauth verifies HS256 tokens signed with a shared secret. It stands
// in for the hosted identity provider in local and test deployments.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickdrop/internal/core/ports"
	"quickdrop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("JWT_SECRET")
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Verify accepts a token carrying "sub", "email" and "exp" claims.
func (v *Verifier) Verify(_ context.Context, token string) (ports.VerifiedToken, error) {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return ports.VerifiedToken{}, errs.NewUnauthenticatedErrorWithCause("unauthorized access", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ports.VerifiedToken{}, errs.NewUnauthenticatedErrorWithCause(
			"unauthorized access",
			errors.New("token has no expiry"),
		)
	}

	subject, _ := claims.GetSubject()
	email, _ := claims["email"].(string)
	return ports.VerifiedToken{Subject: subject, Email: email}, nil
}

// Issue signs a token for subject. It is used by local tooling to mint
// credentials against the same secret.
func (v *Verifier) Issue(subject, email string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
