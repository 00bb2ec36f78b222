package http

import (
	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// identityHandler is a route that runs on behalf of a verified caller. The
// identity is passed as an argument, never read back from the echo context.
type identityHandler func(c echo.Context, id authz.Identity) error

// authenticated verifies the bearer token and hands the identity to next.
func (s *Server) authenticated(next identityHandler) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := s.gate.Authenticate(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return s.fail(c, err)
		}
		return next(c, id)
	}
}

// self requires the query parameter param to be the caller's own email.
func (s *Server) self(param string, next identityHandler) identityHandler {
	return func(c echo.Context, id authz.Identity) error {
		if err := authz.RequireSelf(id, c.QueryParam(param)); err != nil {
			return s.fail(c, err)
		}
		return next(c, id)
	}
}

// role requires the caller's stored role to be required.
func (s *Server) role(required user.Role, next identityHandler) identityHandler {
	return func(c echo.Context, id authz.Identity) error {
		if err := s.gate.RequireRole(c.Request().Context(), id, required); err != nil {
			return s.fail(c, err)
		}
		return next(c, id)
	}
}
