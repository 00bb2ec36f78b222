package http

import (
	"net/http"

	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// Root handles GET /.
func (s *Server) Root(c echo.Context) error {
	return c.String(http.StatusOK, "QuickDrop API is running")
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListParcels handles GET /parcels?email=, the caller's own parcels.
func (s *Server) ListParcels(c echo.Context, id authz.Identity) error {
	query, err := queries.NewListParcelsBySenderQuery(id.Email)
	if err != nil {
		return s.fail(c, err)
	}

	parcels, err := s.h.ListParcelsBySender.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toParcelResponses(parcels))
}

// GetParcel handles GET /parcel/:id.
func (s *Server) GetParcel(c echo.Context) error {
	query, err := queries.NewGetParcelQuery(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toParcelResponse(view))
}

// ListUnassignedParcels handles GET /parcels/unassigned.
func (s *Server) ListUnassignedParcels(c echo.Context) error {
	parcels, err := s.h.ListUnassignedParcels.Handle(c.Request().Context(), queries.NewListUnassignedParcelsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toParcelResponses(parcels))
}

type CreateParcelRequest struct {
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	Weight          float64 `json:"weight"`
	SenderName      string  `json:"senderName"`
	SenderRegion    string  `json:"senderRegion"`
	ReceiverName    string  `json:"receiverName"`
	ReceiverPhone   string  `json:"receiverPhone"`
	ReceiverAddress string  `json:"receiverAddress"`
	ReceiverRegion  string  `json:"receiverRegion"`
	Cost            float64 `json:"cost"`
}

// CreateParcel handles POST /add-parcels. The sender is the caller.
func (s *Server) CreateParcel(c echo.Context, id authz.Identity) error {
	var req CreateParcelRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateParcelCommand(id.Email, parcel.Details{
		Title:           req.Title,
		Type:            req.Type,
		WeightKg:        req.Weight,
		SenderName:      req.SenderName,
		SenderRegion:    req.SenderRegion,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		ReceiverRegion:  req.ReceiverRegion,
	}, req.Cost)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.CreateParcel.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"insertedId": cmd.ParcelID().String(),
		"trackingId": cmd.TrackingID(),
	})
}

type AssignRiderRequest struct {
	ParcelID   string `json:"parcelId"`
	RiderID    string `json:"riderId"`
	RiderName  string `json:"riderName"`
	RiderEmail string `json:"riderEmail"`
}

// AssignRider handles PATCH /assign-rider. The rider's stored name is used;
// riderName in the body is accepted for compatibility and ignored.
func (s *Server) AssignRider(c echo.Context) error {
	var req AssignRiderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return s.fail(c, err)
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID, req.RiderEmail)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.AssignRider.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"modifiedCount": 1})
}

// DeleteParcel handles DELETE /delete-parcel/:id.
func (s *Server) DeleteParcel(c echo.Context, _ authz.Identity) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.DeleteParcel.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"deletedCount": 1})
}
