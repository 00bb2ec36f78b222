package cmd

import (
	"log/slog"

	httpin "quickdrop/internal/adapters/in/http"
	"quickdrop/internal/adapters/out/postgres"
	"quickdrop/internal/core/application/authz"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/ports"
	"quickdrop/internal/jobs"

	"gorm.io/gorm"
)

// Adapters are the outbound integrations chosen at start-up. RoleCache and
// Publisher are optional and must be untyped nil when absent.
type Adapters struct {
	Verifier  ports.IdentityVerifier
	Gateway   ports.PaymentGateway
	RoleCache ports.RoleCache
	Publisher ports.EventPublisher
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	adapters   Adapters
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, adapters Adapters, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		adapters:   adapters,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, adapters.Publisher, logger),
	}
}

// Commands

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	return commands.NewCreatePaymentIntentCommandHandler(c.adapters.Gateway)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateRiderApplicationCommandHandler() commands.CreateRiderApplicationCommandHandler {
	return commands.NewCreateRiderApplicationCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateCashOutCommandHandler() commands.CashOutCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCashOutCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateReconcilePaymentsCommandHandler() commands.ReconcilePaymentsCommandHandler {
	return commands.NewReconcilePaymentsCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateUserRoleCommandHandler() commands.UpdateUserRoleCommandHandler {
	return commands.NewUpdateUserRoleCommandHandler(c.userUoWFactory(), c.adapters.RoleCache)
}

func (c *CompositionRoot) CreateApproveRiderCommandHandler() commands.ApproveRiderCommandHandler {
	var f commands.ApprovalUoWFactory = FuncApprovalUoWFactory(func() commands.ApprovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRiderCommandHandler(f, c.adapters.RoleCache)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRiderCommandHandler() commands.DeleteRiderCommandHandler {
	return commands.NewDeleteRiderCommandHandler(c.riderUoWFactory())
}

// Queries

func (c *CompositionRoot) CreateListParcelsBySenderQueryHandler() queries.ListParcelsBySenderQueryHandler {
	return queries.NewListParcelsBySenderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRiderDeliveriesQueryHandler() queries.ListRiderDeliveriesQueryHandler {
	return queries.NewListRiderDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUnassignedParcelsQueryHandler() queries.ListUnassignedParcelsQueryHandler {
	return queries.NewListUnassignedParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPaymentsByPayerQueryHandler() queries.ListPaymentsByPayerQueryHandler {
	return queries.NewListPaymentsByPayerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchUsersQueryHandler() queries.SearchUsersQueryHandler {
	return queries.NewSearchUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRidersByStatusQueryHandler() queries.ListRidersByStatusQueryHandler {
	return queries.NewListRidersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableRidersQueryHandler() queries.ListAvailableRidersQueryHandler {
	return queries.NewListAvailableRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRiderEarningsQueryHandler() queries.ListRiderEarningsQueryHandler {
	return queries.NewListRiderEarningsQueryHandler(c.gormDB)
}

// Inbound

// CreateGate builds the authorization gate. Roles are read outside any
// transaction through a unit of work that is never begun.
func (c *CompositionRoot) CreateGate() (*authz.Gate, error) {
	users := c.uowFactory.Create().UserRepository()
	return authz.NewGate(c.adapters.Verifier, users, c.adapters.RoleCache, c.cfg.RoleCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateParcel:           c.CreateCreateParcelCommandHandler(),
		CreatePaymentIntent:    c.CreateCreatePaymentIntentCommandHandler(),
		CreateUser:             c.CreateCreateUserCommandHandler(),
		CreateRiderApplication: c.CreateCreateRiderApplicationCommandHandler(),
		CashOut:                c.CreateCashOutCommandHandler(),
		RecordPayment:          c.CreateRecordPaymentCommandHandler(),
		UpdateUserRole:         c.CreateUpdateUserRoleCommandHandler(),
		ApproveRider:           c.CreateApproveRiderCommandHandler(),
		AssignRider:            c.CreateAssignRiderCommandHandler(),
		UpdateDeliveryStatus:   c.CreateUpdateDeliveryStatusCommandHandler(),
		DeleteParcel:           c.CreateDeleteParcelCommandHandler(),
		DeleteRider:            c.CreateDeleteRiderCommandHandler(),

		ListParcelsBySender:   c.CreateListParcelsBySenderQueryHandler(),
		GetParcel:             c.CreateGetParcelQueryHandler(),
		ListRiderDeliveries:   c.CreateListRiderDeliveriesQueryHandler(),
		ListUnassignedParcels: c.CreateListUnassignedParcelsQueryHandler(),
		ListPaymentsByPayer:   c.CreateListPaymentsByPayerQueryHandler(),
		GetUserRole:           c.CreateGetUserRoleQueryHandler(),
		SearchUsers:           c.CreateSearchUsersQueryHandler(),
		ListRidersByStatus:    c.CreateListRidersByStatusQueryHandler(),
		ListAvailableRiders:   c.CreateListAvailableRidersQueryHandler(),
		ListRiderEarnings:     c.CreateListRiderEarningsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	gate, err := c.CreateGate()
	if err != nil {
		return nil, err
	}
	return httpin.NewServer(c.CreateHandlers(), gate, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcilePaymentsCommandHandler(), c.cfg.ReconcileSchedule, c.logger)
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncApprovalUoWFactory func() commands.ApprovalUoW

func (f FuncApprovalUoWFactory) Create() commands.ApprovalUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
