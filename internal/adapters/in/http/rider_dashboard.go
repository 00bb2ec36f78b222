package http

import (
	"net/http"

	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListActiveDeliveries handles GET /rider/pending-deliveries?email=.
func (s *Server) ListActiveDeliveries(c echo.Context, id authz.Identity) error {
	return s.listDeliveries(c, id, queries.ActiveDeliveries)
}

// ListCompletedDeliveries handles GET /rider/completed?email=.
func (s *Server) ListCompletedDeliveries(c echo.Context, id authz.Identity) error {
	return s.listDeliveries(c, id, queries.CompletedDeliveries)
}

func (s *Server) listDeliveries(c echo.Context, id authz.Identity, scope queries.DeliveryScope) error {
	query, err := queries.NewListRiderDeliveriesQuery(id.Email, scope)
	if err != nil {
		return s.fail(c, err)
	}

	parcels, err := s.h.ListRiderDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toParcelResponses(parcels))
}

// ListRiderEarnings handles GET /rider/earnings-raw?email=.
func (s *Server) ListRiderEarnings(c echo.Context, id authz.Identity) error {
	query, err := queries.NewListRiderEarningsQuery(id.Email)
	if err != nil {
		return s.fail(c, err)
	}

	earnings, err := s.h.ListRiderEarnings.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEarningResponses(earnings))
}

type CashOutRequest struct {
	ParcelID   string  `json:"parcelId"`
	Amount     float64 `json:"amount"`
	RiderEmail string  `json:"riderEmail"`
	RiderName  string  `json:"riderName"`
	TrackingID string  `json:"trackingId"`
}

// CashOut handles POST /rider/cashOut.
func (s *Server) CashOut(c echo.Context, id authz.Identity) error {
	var req CashOutRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}
	if req.ParcelID == "" {
		return s.badRequest(c, "Missing required cashout fields")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCashOutCommand(parcelID, req.Amount, req.RiderEmail, req.RiderName, req.TrackingID, id.Email)
	if err != nil {
		return s.fail(c, err)
	}

	earningID, err := s.h.CashOut.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"insertedId": earningID.String()})
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDeliveryStatus handles PATCH /rider/update-delivery/:id. Only the
// rider assigned to the parcel may move it.
func (s *Server) UpdateDeliveryStatus(c echo.Context, id authz.Identity) error {
	var req UpdateDeliveryStatusRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(parcelID, req.Status, id.Email)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"modifiedCount": 1})
}
