package queries_test

import (
	"context"
	"time"

	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/rider"
)

func (suite *QueryHandlersTestSuite) TestListRidersByStatus_PendingOldestFirst() {
	suite.seedRider("late@x.com", "Late", "Dhaka", rider.StatusPending, base.Add(time.Hour))
	suite.seedRider("early@x.com", "Early", "Sylhet", rider.StatusPending, base)
	suite.seedRider("done@x.com", "Done", "Dhaka", rider.StatusActive, base)

	query, err := queries.NewListRidersByStatusQuery("pending")
	suite.Require().NoError(err)

	result, err := queries.NewListRidersByStatusQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("early@x.com", result[0].Email)
	suite.Equal("Sylhet", result[0].Region)
	suite.Equal(27, result[0].Age)
	suite.Equal("pending", result[0].Status)
	suite.Equal("late@x.com", result[1].Email)
}

func (suite *QueryHandlersTestSuite) TestListAvailableRiders_ActiveInRegionOnly() {
	suite.seedRider("b@x.com", "Bashir", "Dhaka", rider.StatusActive, base)
	suite.seedRider("a@x.com", "Anis", "Dhaka", rider.StatusActive, base)
	suite.seedRider("p@x.com", "Pending", "Dhaka", rider.StatusPending, base)
	suite.seedRider("s@x.com", "Sylheti", "Sylhet", rider.StatusActive, base)

	query, err := queries.NewListAvailableRidersQuery(" Dhaka ")
	suite.Require().NoError(err)

	result, err := queries.NewListAvailableRidersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Anis", result[0].Name)
	suite.Equal("Bashir", result[1].Name)
}

func (suite *QueryHandlersTestSuite) TestListAvailableRiders_NoMatch_ReturnsEmptySlice() {
	query, err := queries.NewListAvailableRidersQuery("Khulna")
	suite.Require().NoError(err)

	result, err := queries.NewListAvailableRidersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}
