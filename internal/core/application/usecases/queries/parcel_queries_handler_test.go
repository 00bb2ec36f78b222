package queries_test

import (
	"context"
	"time"

	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestListParcelsBySender_NewestFirst() {
	older := suite.seedParcel("alice@x.com", "", stageUnpaid, base)
	newer := suite.seedParcel("alice@x.com", "", stageUnpaid, base.Add(time.Hour))
	suite.seedParcel("bob@x.com", "", stageUnpaid, base.Add(2*time.Hour))

	query, err := queries.NewListParcelsBySenderQuery(kernel.MustNewEmail("alice@x.com"))
	suite.Require().NoError(err)

	result, err := queries.NewListParcelsBySenderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
}

func (suite *QueryHandlersTestSuite) TestListParcelsBySender_NoParcels_ReturnsEmptySlice() {
	query, err := queries.NewListParcelsBySenderQuery(kernel.MustNewEmail("nobody@x.com"))
	suite.Require().NoError(err)

	result, err := queries.NewListParcelsBySenderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetParcel_MapsEveryColumn() {
	p := suite.seedParcel("alice@x.com", "rider@x.com", stageDelivered, base)

	query, err := queries.NewGetParcelQuery(p.ID().String())
	suite.Require().NoError(err)

	view, err := queries.NewGetParcelQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(p.ID()))
	suite.Equal(p.TrackingID(), view.TrackingID)
	suite.Equal("alice@x.com", view.SenderEmail)
	suite.Equal("Documents", view.Title)
	suite.Equal("document", view.Type)
	suite.InDelta(0.5, view.WeightKg, 1e-9)
	suite.Equal("Dhaka", view.SenderRegion)
	suite.Equal("Chattogram", view.ReceiverRegion)
	suite.InDelta(150.5, view.Cost, 1e-9)
	suite.Equal("paid", view.PaymentStatus)
	suite.Equal("delivered", view.DeliveryStatus)
	suite.Equal(p.TransactionID(), view.TransactionID)
	suite.Equal("Rider", view.RiderName)
	suite.Equal("rider@x.com", view.RiderEmail)
	suite.Require().NotNil(view.TransitAt)
	suite.Require().NotNil(view.DeliveredAt)
	suite.True(view.DeliveredAt.Equal(base.Add(4 * time.Minute)))
	suite.False(view.CashOut)
}

func (suite *QueryHandlersTestSuite) TestGetParcel_UnassignedParcelHasEmptyRider() {
	p := suite.seedParcel("alice@x.com", "", stageUnpaid, base)

	query, err := queries.NewGetParcelQuery(p.ID().String())
	suite.Require().NoError(err)

	view, err := queries.NewGetParcelQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("unpaid", view.PaymentStatus)
	suite.Equal("not_delivered", view.DeliveryStatus)
	suite.Empty(view.TransactionID)
	suite.Empty(view.RiderEmail)
	suite.Nil(view.TransitAt)
	suite.Nil(view.DeliveredAt)
}

func (suite *QueryHandlersTestSuite) TestGetParcel_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetParcelQuery(kernel.NewUUID().String())
	suite.Require().NoError(err)

	_, err = queries.NewGetParcelQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestListRiderDeliveries_ActiveScope() {
	assigned := suite.seedParcel("alice@x.com", "rider@x.com", stageAssigned, base.Add(time.Hour))
	transit := suite.seedParcel("alice@x.com", "rider@x.com", stageInTransit, base)
	suite.seedParcel("alice@x.com", "rider@x.com", stageDelivered, base)
	suite.seedParcel("alice@x.com", "other@x.com", stageAssigned, base)

	query, err := queries.NewListRiderDeliveriesQuery(kernel.MustNewEmail("rider@x.com"), queries.ActiveDeliveries)
	suite.Require().NoError(err)

	result, err := queries.NewListRiderDeliveriesQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(transit.ID()))
	suite.True(result[1].ID.IsEqual(assigned.ID()))
}

func (suite *QueryHandlersTestSuite) TestListRiderDeliveries_CompletedScope_MostRecentDeliveryFirst() {
	first := suite.seedParcel("alice@x.com", "rider@x.com", stageDelivered, base)
	second := suite.seedParcel("alice@x.com", "rider@x.com", stageCashedOut, base.Add(time.Hour))
	suite.seedParcel("alice@x.com", "rider@x.com", stageInTransit, base)

	query, err := queries.NewListRiderDeliveriesQuery(kernel.MustNewEmail("rider@x.com"), queries.CompletedDeliveries)
	suite.Require().NoError(err)

	result, err := queries.NewListRiderDeliveriesQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.True(result[0].CashOut)
	suite.True(result[1].ID.IsEqual(first.ID()))
}

func (suite *QueryHandlersTestSuite) TestListUnassignedParcels_OnlyPaidAndWaiting() {
	later := suite.seedParcel("alice@x.com", "", stagePaid, base.Add(time.Hour))
	earlier := suite.seedParcel("bob@x.com", "", stagePaid, base)
	suite.seedParcel("alice@x.com", "", stageUnpaid, base)
	suite.seedParcel("alice@x.com", "rider@x.com", stageAssigned, base)

	result, err := queries.NewListUnassignedParcelsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListUnassignedParcelsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(earlier.ID()))
	suite.True(result[1].ID.IsEqual(later.ID()))
}
