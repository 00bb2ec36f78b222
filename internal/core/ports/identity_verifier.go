package ports

import "context"

// VerifiedToken is what the identity provider vouches for.
type VerifiedToken struct {
	Subject string
	Email   string
}

// IdentityVerifier checks a bearer credential with the identity provider.
// Invalid or expired credentials are reported as UnauthenticatedError.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (VerifiedToken, error)
}
