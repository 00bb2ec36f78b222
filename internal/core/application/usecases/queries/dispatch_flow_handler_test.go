package queries_test

import (
	"context"
	"time"

	"quickdrop/internal/adapters/out/postgres"
	"quickdrop/internal/core/application/usecases/commands"
	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/rider"
)

type dispatchUoWFactory func() commands.DispatchUoW

func (f dispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

func (suite *QueryHandlersTestSuite) assignHandler() commands.AssignRiderCommandHandler {
	uowFactory := postgres.NewGormUnitOfWorkFactory(suite.db, nil, nil)
	return commands.NewAssignRiderCommandHandler(dispatchUoWFactory(func() commands.DispatchUoW {
		return uowFactory.Create()
	}))
}

func (suite *QueryHandlersTestSuite) TestAssignRider_RemovesParcelFromUnassignedAndMarksRiderCollected() {
	ctx := context.Background()
	first := suite.seedParcel("alice@x.com", "", stagePaid, base)
	second := suite.seedParcel("bob@x.com", "", stagePaid, base.Add(time.Hour))
	r := suite.seedRider("rider@x.com", "Karim", "Chattogram", rider.StatusActive, base)

	cmd, err := commands.NewAssignRiderCommand(first.ID(), r.ID(), "rider@x.com")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignHandler().Handle(ctx, cmd))

	unassigned, err := queries.NewListUnassignedParcelsQueryHandler(suite.db).
		Handle(ctx, queries.NewListUnassignedParcelsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(unassigned, 1)
	suite.True(unassigned[0].ID.IsEqual(second.ID()))

	regionQuery, err := queries.NewListAvailableRidersQuery("Chattogram")
	suite.Require().NoError(err)
	riders, err := queries.NewListAvailableRidersQueryHandler(suite.db).Handle(ctx, regionQuery)
	suite.Require().NoError(err)
	suite.Require().Len(riders, 1)
	suite.Equal(rider.WorkStatusCollected, riders[0].WorkStatus)

	parcelQuery, err := queries.NewGetParcelQuery(first.ID().String())
	suite.Require().NoError(err)
	view, err := queries.NewGetParcelQueryHandler(suite.db).Handle(ctx, parcelQuery)
	suite.Require().NoError(err)
	suite.Equal("rider_assigned", view.DeliveryStatus)
	suite.Equal("rider@x.com", view.RiderEmail)
	suite.Equal("Karim", view.RiderName)

	// The same rider can take another parcel after the first assignment.
	cmd, err = commands.NewAssignRiderCommand(second.ID(), r.ID(), "rider@x.com")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignHandler().Handle(ctx, cmd))

	unassigned, err = queries.NewListUnassignedParcelsQueryHandler(suite.db).
		Handle(ctx, queries.NewListUnassignedParcelsQuery())
	suite.Require().NoError(err)
	suite.Empty(unassigned)
}
