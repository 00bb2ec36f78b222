// Package authz implements the authorization gate in front of every
// protected operation. It offers three independent checks that callers
// compose per operation:
//
//   - Authenticate: verify the bearer credential, yielding an Identity
//   - RequireSelf: the caller acts on their own email
//   - RequireRole: the caller's stored role matches
package authz

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"
	"quickdrop/internal/core/ports"
	"quickdrop/internal/pkg/errs"
)

// DefaultRoleTTL bounds how long a cached role may lag behind the users table.
const DefaultRoleTTL = time.Minute

// Identity is a caller whose credential has been verified.
type Identity struct {
	Subject string
	Email   kernel.Email
}

// RoleSource reads a user's stored role.
type RoleSource interface {
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}

// Gate verifies credentials and roles.
type Gate struct {
	verifier ports.IdentityVerifier
	users    RoleSource
	cache    ports.RoleCache
	ttl      time.Duration
	logger   *slog.Logger
}

// NewGate builds a gate. cache may be nil, in which case every role check
// reads the users table.
func NewGate(
	verifier ports.IdentityVerifier,
	users RoleSource,
	cache ports.RoleCache,
	ttl time.Duration,
	logger *slog.Logger,
) (*Gate, error) {
	if verifier == nil {
		return nil, errs.NewValueIsRequiredError("verifier")
	}
	if users == nil {
		return nil, errs.NewValueIsRequiredError("users")
	}
	if ttl <= 0 {
		ttl = DefaultRoleTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		verifier: verifier,
		users:    users,
		cache:    cache,
		ttl:      ttl,
		logger:   logger.With("component", "authz_gate"),
	}, nil
}

// Authenticate verifies the "Authorization: Bearer <token>" header value.
func (g *Gate) Authenticate(ctx context.Context, authorization string) (Identity, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return Identity{}, errs.NewUnauthenticatedError("no or invalid authorization header")
	}

	verified, err := g.verifier.Verify(ctx, token)
	if err != nil {
		return Identity{}, err
	}

	if strings.TrimSpace(verified.Email) == "" {
		return Identity{}, errs.NewUnauthenticatedError("no email found")
	}
	email, err := kernel.NewEmail(verified.Email)
	if err != nil {
		return Identity{}, errs.NewUnauthenticatedErrorWithCause("token email is malformed", err)
	}

	return Identity{Subject: verified.Subject, Email: email}, nil
}

// RequireSelf checks that the email a caller supplied is their own.
func RequireSelf(id Identity, claimed string) error {
	if strings.TrimSpace(claimed) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	email, err := kernel.NewEmail(claimed)
	if err != nil || !email.IsEqual(id.Email) {
		return errs.NewForbiddenError("email does not match token")
	}
	return nil
}

// RequireRole checks the caller's stored role. A caller with no user record
// holds no role and is forbidden.
func (g *Gate) RequireRole(ctx context.Context, id Identity, required user.Role) error {
	if id.Email.IsZero() {
		return errs.NewUnauthenticatedError("no email found")
	}

	role, err := g.roleOf(ctx, id.Email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewForbiddenError(forbiddenReason(required))
	}
	if err != nil {
		return err
	}

	if role != required {
		return errs.NewForbiddenError(forbiddenReason(required))
	}
	return nil
}

func (g *Gate) roleOf(ctx context.Context, email kernel.Email) (user.Role, error) {
	if g.cache != nil {
		role, ok, err := g.cache.Get(ctx, email)
		if err != nil {
			g.logger.WarnContext(ctx, "role cache read failed", "error", err)
		} else if ok {
			return role, nil
		}
	}

	u, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, email, u.Role(), g.ttl); err != nil {
			g.logger.WarnContext(ctx, "role cache write failed", "error", err)
		}
	}
	return u.Role(), nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func forbiddenReason(role user.Role) string {
	switch role {
	case user.RoleAdmin:
		return "admins only"
	case user.RoleRider:
		return "riders only"
	default:
		return string(role) + " only"
	}
}
