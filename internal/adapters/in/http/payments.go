package http

import (
	"net/http"
	"time"

	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListPayments handles GET /payments?email=, newest payment first.
func (s *Server) ListPayments(c echo.Context, id authz.Identity) error {
	query, err := queries.NewListPaymentsByPayerQuery(id.Email)
	if err != nil {
		return s.fail(c, err)
	}

	payments, err := s.h.ListPaymentsByPayer.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toPaymentResponses(payments))
}

type CreatePaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

// CreatePaymentIntent handles POST /createPaymentIntent.
func (s *Server) CreatePaymentIntent(c echo.Context, _ authz.Identity) error {
	var req CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(req.Amount)
	if err != nil {
		return s.fail(c, err)
	}

	secret, err := s.h.CreatePaymentIntent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"clientSecret": secret})
}

type RecordPaymentRequest struct {
	ParcelID      string     `json:"parcelId"`
	Amount        float64    `json:"amount"`
	TransactionID string     `json:"transactionId"`
	PaymentMethod string     `json:"paymentMethod"`
	PaidAt        *time.Time `json:"paid_date"`
}

type RecordPaymentResponse struct {
	PaymentID     string `json:"paymentId"`
	Recorded      bool   `json:"recorded"`
	ParcelUpdated bool   `json:"parcelUpdated"`
}

// RecordPayment handles POST /payments. The payer is the caller. The payment
// and the parcel flip are written in one transaction, so the response always
// describes both halves.
func (s *Server) RecordPayment(c echo.Context, id authz.Identity) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return s.fail(c, err)
	}
	var paidAt time.Time
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	cmd, err := commands.NewRecordPaymentCommand(parcelID, id.Email, req.Amount, req.TransactionID, req.PaymentMethod, paidAt)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.RecordPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	status := http.StatusCreated
	if !result.Recorded {
		status = http.StatusOK
	}
	return c.JSON(status, RecordPaymentResponse{
		PaymentID:     result.PaymentID.String(),
		Recorded:      result.Recorded,
		ParcelUpdated: result.ParcelUpdated,
	})
}
