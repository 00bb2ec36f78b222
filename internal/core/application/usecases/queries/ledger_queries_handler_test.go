package queries_test

import (
	"context"
	"time"

	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"
)

func (suite *QueryHandlersTestSuite) TestListPaymentsByPayer_NewestFirst() {
	p1 := suite.seedParcel("alice@x.com", "", stagePaid, base)
	p2 := suite.seedParcel("alice@x.com", "", stagePaid, base)
	first := suite.seedPayment(p1, "alice@x.com", base)
	second := suite.seedPayment(p2, "alice@x.com", base.Add(time.Hour))
	suite.seedPayment(p2, "bob@x.com", base)

	query, err := queries.NewListPaymentsByPayerQuery(kernel.MustNewEmail("alice@x.com"))
	suite.Require().NoError(err)

	result, err := queries.NewListPaymentsByPayerQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.True(result[0].ParcelID.IsEqual(p2.ID()))
	suite.Equal(second.TransactionID(), result[0].TransactionID)
	suite.Equal("card", result[0].Method)
	suite.InDelta(150.5, result[0].Amount, 1e-9)
	suite.True(result[1].ID.IsEqual(first.ID()))
}

func (suite *QueryHandlersTestSuite) TestListRiderEarnings_NewestFirst() {
	p1 := suite.seedParcel("alice@x.com", "rider@x.com", stageCashedOut, base)
	p2 := suite.seedParcel("alice@x.com", "rider@x.com", stageCashedOut, base)
	p3 := suite.seedParcel("alice@x.com", "other@x.com", stageCashedOut, base)
	first := suite.seedEarning(p1, 40, base.Add(time.Hour))
	second := suite.seedEarning(p2, 60.25, base.Add(2*time.Hour))
	suite.seedEarning(p3, 10, base)

	query, err := queries.NewListRiderEarningsQuery(kernel.MustNewEmail("rider@x.com"))
	suite.Require().NoError(err)

	result, err := queries.NewListRiderEarningsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.Equal(p2.TrackingID(), result[0].TrackingID)
	suite.InDelta(60.25, result[0].Amount, 1e-9)
	suite.Equal("Rider", result[0].RiderName)
	suite.True(result[1].ID.IsEqual(first.ID()))
}
