package http

import (
	"net/http"

	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/rider"

	"github.com/labstack/echo/v4"
)

type RiderApplicationRequest struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Age           int    `json:"age"`
	Region        string `json:"region"`
	District      string `json:"district"`
	NID           string `json:"nid"`
	BikeBrand     string `json:"bikeBrand"`
	BikeRegNumber string `json:"bikeRegNumber"`
}

// CreateRiderApplication handles POST /riders. Any status in the body is
// ignored; applications start pending.
func (s *Server) CreateRiderApplication(c echo.Context) error {
	var req RiderApplicationRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateRiderApplicationCommand(req.Email, rider.Profile{
		Name:             req.Name,
		Phone:            req.Phone,
		Age:              req.Age,
		Region:           req.Region,
		District:         req.District,
		NationalID:       req.NID,
		BikeBrand:        req.BikeBrand,
		BikeRegistration: req.BikeRegNumber,
	})
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.CreateRiderApplication.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"insertedId": cmd.RiderID().String()})
}

// ListPendingRiders handles GET /riders/pending.
func (s *Server) ListPendingRiders(c echo.Context, _ authz.Identity) error {
	return s.listRiders(c, rider.StatusPending)
}

// ListApprovedRiders handles GET /riders/approved.
func (s *Server) ListApprovedRiders(c echo.Context, _ authz.Identity) error {
	return s.listRiders(c, rider.StatusActive)
}

func (s *Server) listRiders(c echo.Context, status rider.Status) error {
	query, err := queries.NewListRidersByStatusQuery(status.String())
	if err != nil {
		return s.fail(c, err)
	}

	riders, err := s.h.ListRidersByStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRiderResponses(riders))
}

// ListAvailableRiders handles GET /riders/available?region=.
func (s *Server) ListAvailableRiders(c echo.Context) error {
	query, err := queries.NewListAvailableRidersQuery(c.QueryParam("region"))
	if err != nil {
		return s.fail(c, err)
	}

	riders, err := s.h.ListAvailableRiders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRiderResponses(riders))
}

type ApproveRiderResponse struct {
	Rider        RiderResponse `json:"rider"`
	User         UserResponse  `json:"user"`
	UserPromoted bool          `json:"userPromoted"`
}

// ApproveRider handles PATCH /riders/approve/:id and reports the final state
// of both the rider and the promoted user.
func (s *Server) ApproveRider(c echo.Context, _ authz.Identity) error {
	riderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewApproveRiderCommand(riderID)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.ApproveRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ApproveRiderResponse{
		Rider:        riderFromSnapshot(result.Rider),
		User:         userFromSnapshot(result.User),
		UserPromoted: result.UserPromoted,
	})
}

// DeleteRider handles DELETE /riders/:id.
func (s *Server) DeleteRider(c echo.Context, _ authz.Identity) error {
	riderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteRiderCommand(riderID)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.DeleteRider.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"deletedCount": 1})
}
