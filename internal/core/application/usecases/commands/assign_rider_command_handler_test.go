package commands_test

import (
	"testing"

	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/parcel"
	"quickdrop/internal/core/domain/model/rider"
	"quickdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assignFixture struct {
	parcelRepo *MockParcelRepository
	riderRepo  *MockRiderRepository
	uow        *MockUoW
	factory    *MockDispatchUoWFactory
}

func newAssignFixture(t *testing.T, p *parcel.Parcel, r *rider.Rider) assignFixture {
	t.Helper()
	ctx := t.Context()
	f := assignFixture{
		parcelRepo: new(MockParcelRepository),
		riderRepo:  new(MockRiderRepository),
		uow:        new(MockUoW),
		factory:    new(MockDispatchUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ParcelRepository").Return(f.parcelRepo).Once()
	f.uow.On("RiderRepository").Return(f.riderRepo).Once()
	f.parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	f.riderRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	return f
}

func TestAssignRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := restoreParcel(t, paid)
	r := restoreRider(t, rider.StatusActive)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), "Rider@x.com")
	require.NoError(t, err)

	f := newAssignFixture(t, p, r)
	f.parcelRepo.On("Update", ctx, p).Return(nil).Once()
	f.riderRepo.On("UpdateWorkStatus", ctx, r).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	err = commands.NewAssignRiderCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.RiderAssigned, p.DeliveryStatus())
	assert.True(t, p.IsAssignedTo(riderEmail))
	assert.Equal(t, "Rider", p.RiderName())
	assert.Equal(t, rider.WorkStatusCollected, r.WorkStatus())
	f.parcelRepo.AssertExpectations(t)
	f.riderRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	p := restoreParcel(t, assigned)
	r := restoreRider(t, rider.StatusActive)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), "rider@x.com")
	require.NoError(t, err)

	f := newAssignFixture(t, p, r)

	err = commands.NewAssignRiderCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	f.parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.riderRepo.AssertNotCalled(t, "UpdateWorkStatus", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignRiderCommandHandler_Handle_AlreadyAssigned_ConflictWins(t *testing.T) {
	tests := []struct {
		name   string
		status rider.Status
		email  string
	}{
		{"pending rider", rider.StatusPending, "rider@x.com"},
		{"email does not match rider", rider.StatusActive, "someone@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			p := restoreParcel(t, assigned)
			r := restoreRider(t, tt.status)
			cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), tt.email)
			require.NoError(t, err)

			f := newAssignFixture(t, p, r)

			err = commands.NewAssignRiderCommandHandler(f.factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrConflict)
			assert.False(t, errs.IsInvalidArgument(err))
			f.parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.riderRepo.AssertNotCalled(t, "UpdateWorkStatus", mock.Anything, mock.Anything)
		})
	}
}

func TestAssignRiderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	p := restoreParcel(t, paid)
	r := restoreRider(t, rider.StatusActive)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), "rider@x.com")
	require.NoError(t, err)

	f := newAssignFixture(t, p, r)
	f.parcelRepo.On("Update", ctx, p).Return(errs.NewConflictError("parcel was modified concurrently")).Once()

	err = commands.NewAssignRiderCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	f.riderRepo.AssertNotCalled(t, "UpdateWorkStatus", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignRiderCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		parcel     func(*parcel.Snapshot)
		status     rider.Status
		email      string
		wantErr    error
		wantSubstr string
	}{
		{"unpaid parcel", nil, rider.StatusActive, "rider@x.com", errs.ErrValueIsInvalid, "not paid"},
		{"pending rider", paid, rider.StatusPending, "rider@x.com", errs.ErrValueIsInvalid, "not approved"},
		{"email does not match rider", paid, rider.StatusActive, "someone@x.com", errs.ErrValueIsInvalid, "riderEmail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			p := restoreParcel(t, tt.parcel)
			r := restoreRider(t, tt.status)
			cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), tt.email)
			require.NoError(t, err)

			f := newAssignFixture(t, p, r)

			err = commands.NewAssignRiderCommandHandler(f.factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantSubstr)
			f.parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestAssignRiderCommandHandler_Handle_UnknownRider(t *testing.T) {
	ctx := t.Context()
	p := restoreParcel(t, paid)
	riderID := kernel.NewUUID()
	cmd, err := commands.NewAssignRiderCommand(p.ID(), riderID, "rider@x.com")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	factory := new(MockDispatchUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	riderRepo.On("Get", ctx, riderID).Return(nil, errs.NewObjectNotFoundError("rider", riderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, parcel.NotDelivered, p.DeliveryStatus())
}
