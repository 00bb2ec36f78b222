// Package firebaseauth verifies Firebase ID tokens issued to the web client.
package firebaseauth

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"quickdrop/internal/core/ports"
	"quickdrop/internal/pkg/errs"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// IDTokenVerifier is the part of *auth.Client the verifier uses.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type Verifier struct {
	client IDTokenVerifier
}

// New builds a verifier from a base64 encoded service account JSON, the form
// the key is kept in the environment.
func New(ctx context.Context, encodedKey string) (*Verifier, error) {
	if strings.TrimSpace(encodedKey) == "" {
		return nil, errs.NewValueIsRequiredError("FB_KEY")
	}
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encodedKey))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("FB_KEY", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(key))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting auth client: %w", err)
	}

	return NewVerifier(client)
}

func NewVerifier(client IDTokenVerifier) (*Verifier, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &Verifier{client: client}, nil
}

// Verify checks signature, expiry and audience of an ID token. A token the
// provider rejects is an UnauthenticatedError; failing to fetch the signing
// certificates is reported as is.
func (v *Verifier) Verify(ctx context.Context, token string) (ports.VerifiedToken, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		if auth.IsCertificateFetchFailed(err) {
			return ports.VerifiedToken{}, fmt.Errorf("verify id token: %w", err)
		}
		return ports.VerifiedToken{}, errs.NewUnauthenticatedErrorWithCause("unauthorized access", err)
	}

	email, _ := decoded.Claims["email"].(string)
	return ports.VerifiedToken{
		Subject: decoded.UID,
		Email:   email,
	}, nil
}
