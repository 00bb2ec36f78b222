package user

import (
	"fmt"
	"strings"

	"quickdrop/internal/pkg/errs"
)

// Role decides which role-gated operations a user may call.
type Role string

const (
	RoleUser  Role = "user"
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

// ParseRole maps a wire value to a Role. An empty value is the default role.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleRider:
		return RoleRider, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a recognized role", raw))
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleRider, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}
