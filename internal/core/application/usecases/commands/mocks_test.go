package commands_test

import (
	"context"
	"testing"
	"time"

	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/domain/model/earning"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/core/domain/model/payment"
	"quickdrop/internal/core/domain/model/rider"
	"quickdrop/internal/core/domain/model/user"
	"quickdrop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListOrphaned(ctx context.Context, limit int) ([]*payment.Payment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) UpdateWorkStatus(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockEarningRepository struct{ mock.Mock }

func (m *MockEarningRepository) Add(ctx context.Context, e *earning.Earning) error {
	return m.Called(ctx, e).Error(0)
}

// MockUoW satisfies every unit of work the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	return m.Called().Get(0).(ports.RiderRepository)
}

func (m *MockUoW) EarningRepository() ports.EarningRepository {
	return m.Called().Get(0).(ports.EarningRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	return m.Called().Get(0).(commands.RiderUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	return m.Called().Get(0).(commands.DispatchUoW)
}

type MockApprovalUoWFactory struct{ mock.Mock }

func (m *MockApprovalUoWFactory) Create() commands.ApprovalUoW {
	return m.Called().Get(0).(commands.ApprovalUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	return m.Called().Get(0).(commands.SettlementUoW)
}

type MockRoleCache struct{ mock.Mock }

func (m *MockRoleCache) Get(ctx context.Context, email kernel.Email) (user.Role, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.Role), args.Bool(1), args.Error(2)
}

func (m *MockRoleCache) Set(ctx context.Context, email kernel.Email, role user.Role, ttl time.Duration) error {
	return m.Called(ctx, email, role, ttl).Error(0)
}

func (m *MockRoleCache) Invalidate(ctx context.Context, email kernel.Email) error {
	return m.Called(ctx, email).Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, amount kernel.Money) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

var (
	senderEmail = kernel.MustNewEmail("sender@x.com")
	riderEmail  = kernel.MustNewEmail("rider@x.com")
)

func testDetails() parcel.Details {
	return parcel.Details{
		Title:          "Documents",
		Type:           "document",
		WeightKg:       1.5,
		SenderName:     "Sender",
		SenderRegion:   "Dhaka",
		ReceiverName:   "Receiver",
		ReceiverPhone:  "01700000000",
		ReceiverRegion: "Chattogram",
	}
}

func testMoney(t *testing.T, major float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromMajor(major)
	require.NoError(t, err)
	return m
}

// restoreParcel builds a parcel in an arbitrary stored state.
func restoreParcel(t *testing.T, mutate func(*parcel.Snapshot)) *parcel.Parcel {
	t.Helper()
	s := parcel.Snapshot{
		ID:             kernel.NewUUID(),
		TrackingID:     "QD-TEST000001",
		Sender:         senderEmail,
		Details:        testDetails(),
		Cost:           testMoney(t, 150),
		PaymentStatus:  parcel.Unpaid,
		DeliveryStatus: parcel.NotDelivered,
		CreatedAt:      time.Now().Add(-time.Hour),
		Version:        3,
	}
	if mutate != nil {
		mutate(&s)
	}
	p, err := parcel.RestoreParcel(s)
	require.NoError(t, err)
	return p
}

func paid(s *parcel.Snapshot) {
	s.PaymentStatus = parcel.Paid
	s.TransactionID = "tx1"
}

func assigned(s *parcel.Snapshot) {
	paid(s)
	s.DeliveryStatus = parcel.RiderAssigned
	s.RiderName = "Rider"
	s.RiderEmail = riderEmail
}

func delivered(s *parcel.Snapshot) {
	assigned(s)
	at := time.Now().Add(-time.Minute)
	s.DeliveryStatus = parcel.Delivered
	s.TransitAt = &at
	s.DeliveredAt = &at
}

func restoreRider(t *testing.T, status rider.Status) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(rider.Snapshot{
		ID:    kernel.NewUUID(),
		Email: riderEmail,
		Profile: rider.Profile{
			Name:   "Rider",
			Region: "Chattogram",
		},
		Status:    status,
		CreatedAt: time.Now().Add(-time.Hour),
		Version:   1,
	})
	require.NoError(t, err)
	return r
}

func restoreUser(t *testing.T, email kernel.Email, role user.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(user.Snapshot{
		ID:    kernel.NewUUID(),
		Email: email,
		Name:  "Someone",
		Role:  role,
	})
	require.NoError(t, err)
	return u
}
