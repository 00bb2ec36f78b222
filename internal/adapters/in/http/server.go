// Package http exposes the QuickDrop operations over HTTP with echo. Paths and
// JSON field names follow the ones the web client already uses.
package http

import (
	"context"
	"log/slog"

	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"
	"quickdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CommandHandler runs a command that yields nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handler runs a command or query that yields a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Gate is the authorization gate the routes are composed with.
type Gate interface {
	Authenticate(ctx context.Context, authorization string) (authz.Identity, error)
	RequireRole(ctx context.Context, id authz.Identity, required user.Role) error
}

// Handlers are the use cases the server dispatches to.
type Handlers struct {
	CreateParcel           CommandHandler[commands.CreateParcelCommand]
	CreatePaymentIntent    Handler[commands.CreatePaymentIntentCommand, string]
	CreateUser             CommandHandler[commands.CreateUserCommand]
	CreateRiderApplication CommandHandler[commands.CreateRiderApplicationCommand]
	CashOut                Handler[commands.CashOutCommand, kernel.UUID]
	RecordPayment          Handler[commands.RecordPaymentCommand, commands.RecordPaymentResult]
	UpdateUserRole         Handler[commands.UpdateUserRoleCommand, bool]
	ApproveRider           Handler[commands.ApproveRiderCommand, commands.ApproveRiderResult]
	AssignRider            CommandHandler[commands.AssignRiderCommand]
	UpdateDeliveryStatus   CommandHandler[commands.UpdateDeliveryStatusCommand]
	DeleteParcel           CommandHandler[commands.DeleteParcelCommand]
	DeleteRider            CommandHandler[commands.DeleteRiderCommand]

	ListParcelsBySender   Handler[queries.ListParcelsBySenderQuery, []queries.ParcelView]
	GetParcel             Handler[queries.GetParcelQuery, queries.ParcelView]
	ListRiderDeliveries   Handler[queries.ListRiderDeliveriesQuery, []queries.ParcelView]
	ListUnassignedParcels Handler[queries.ListUnassignedParcelsQuery, []queries.ParcelView]
	ListPaymentsByPayer   Handler[queries.ListPaymentsByPayerQuery, []queries.PaymentView]
	GetUserRole           Handler[queries.GetUserRoleQuery, string]
	SearchUsers           Handler[queries.SearchUsersQuery, []queries.UserView]
	ListRidersByStatus    Handler[queries.ListRidersByStatusQuery, []queries.RiderView]
	ListAvailableRiders   Handler[queries.ListAvailableRidersQuery, []queries.RiderView]
	ListRiderEarnings     Handler[queries.ListRiderEarningsQuery, []queries.EarningView]
}

// Server coordinates between HTTP requests and the application use cases.
type Server struct {
	h      Handlers
	gate   Gate
	logger *slog.Logger
}

func NewServer(h Handlers, gate Gate, logger *slog.Logger) (*Server, error) {
	if gate == nil {
		return nil, errs.NewValueIsRequiredError("gate")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      h,
		gate:   gate,
		logger: logger.With("component", "http_server"),
	}, nil
}

// NewEcho returns an echo instance with recovery, CORS and access logging.
func NewEcho(logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	return e
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.Root)
	e.GET("/health", s.Health)

	// parcels
	e.GET("/parcels", s.authenticated(s.self("email", s.ListParcels)))
	e.GET("/parcel/:id", s.GetParcel)
	e.GET("/parcels/unassigned", s.ListUnassignedParcels)
	e.POST("/add-parcels", s.authenticated(s.CreateParcel))
	e.PATCH("/assign-rider", s.AssignRider)
	e.DELETE("/delete-parcel/:id", s.authenticated(s.role(user.RoleAdmin, s.DeleteParcel)))

	// payments
	e.GET("/payments", s.authenticated(s.self("email", s.ListPayments)))
	e.POST("/payments", s.authenticated(s.RecordPayment))
	e.POST("/createPaymentIntent", s.authenticated(s.CreatePaymentIntent))

	// users
	e.POST("/users", s.CreateUser)
	e.GET("/user/role/:email", s.authenticated(s.GetUserRole))
	e.GET("/admin/search", s.authenticated(s.role(user.RoleAdmin, s.SearchUsers)))
	e.PATCH("/admin/role/:id", s.authenticated(s.role(user.RoleAdmin, s.UpdateUserRole)))

	// riders
	e.POST("/riders", s.CreateRiderApplication)
	e.GET("/riders/pending", s.authenticated(s.role(user.RoleAdmin, s.ListPendingRiders)))
	e.GET("/riders/approved", s.authenticated(s.role(user.RoleAdmin, s.ListApprovedRiders)))
	e.GET("/riders/available", s.ListAvailableRiders)
	e.PATCH("/riders/approve/:id", s.authenticated(s.role(user.RoleAdmin, s.ApproveRider)))
	e.DELETE("/riders/:id", s.authenticated(s.role(user.RoleAdmin, s.DeleteRider)))

	// rider dashboard
	e.GET("/rider/pending-deliveries",
		s.authenticated(s.role(user.RoleRider, s.self("email", s.ListActiveDeliveries))))
	e.GET("/rider/completed",
		s.authenticated(s.role(user.RoleRider, s.self("email", s.ListCompletedDeliveries))))
	e.GET("/rider/earnings-raw",
		s.authenticated(s.role(user.RoleRider, s.self("email", s.ListRiderEarnings))))
	e.POST("/rider/cashOut", s.authenticated(s.role(user.RoleRider, s.CashOut)))
	e.PATCH("/rider/update-delivery/:id", s.authenticated(s.role(user.RoleRider, s.UpdateDeliveryStatus)))
}
