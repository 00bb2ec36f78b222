package http

import (
	"net/http"

	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// CreateUser handles POST /users at signup.
func (s *Server) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(req.Email, req.Name, req.PhotoURL)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.CreateUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"insertedId": cmd.UserID().String()})
}

// GetUserRole handles GET /user/role/:email.
func (s *Server) GetUserRole(c echo.Context, _ authz.Identity) error {
	query, err := queries.NewGetUserRoleQuery(c.Param("email"))
	if err != nil {
		return s.fail(c, err)
	}

	role, err := s.h.GetUserRole.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"role": role})
}

// SearchUsers handles GET /admin/search?email=.
func (s *Server) SearchUsers(c echo.Context, _ authz.Identity) error {
	query, err := queries.NewSearchUsersQuery(c.QueryParam("email"))
	if err != nil {
		return s.fail(c, err)
	}

	users, err := s.h.SearchUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserRole handles PATCH /admin/role/:id.
func (s *Server) UpdateUserRole(c echo.Context, _ authz.Identity) error {
	var req UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateUserRoleCommand(userID, req.Role)
	if err != nil {
		return s.fail(c, err)
	}

	changed, err := s.h.UpdateUserRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	modified := 0
	if changed {
		modified = 1
	}
	return c.JSON(http.StatusOK, map[string]int{"modifiedCount": modified})
}
