package queries_test

import (
	"testing"

	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"ListParcelsBySender", queries.ListParcelsBySenderQuery{}.Validate, queries.ErrListParcelsBySenderQueryIsNotConstructed},
		{"GetParcel", queries.GetParcelQuery{}.Validate, queries.ErrGetParcelQueryIsNotConstructed},
		{"ListRiderDeliveries", queries.ListRiderDeliveriesQuery{}.Validate, queries.ErrListRiderDeliveriesQueryIsNotConstructed},
		{"ListUnassignedParcels", queries.ListUnassignedParcelsQuery{}.Validate, queries.ErrListUnassignedParcelsQueryIsNotConstructed},
		{"ListPaymentsByPayer", queries.ListPaymentsByPayerQuery{}.Validate, queries.ErrListPaymentsByPayerQueryIsNotConstructed},
		{"GetUserRole", queries.GetUserRoleQuery{}.Validate, queries.ErrGetUserRoleQueryIsNotConstructed},
		{"SearchUsers", queries.SearchUsersQuery{}.Validate, queries.ErrSearchUsersQueryIsNotConstructed},
		{"ListRidersByStatus", queries.ListRidersByStatusQuery{}.Validate, queries.ErrListRidersByStatusQueryIsNotConstructed},
		{"ListAvailableRiders", queries.ListAvailableRidersQuery{}.Validate, queries.ErrListAvailableRidersQueryIsNotConstructed},
		{"ListRiderEarnings", queries.ListRiderEarningsQuery{}.Validate, queries.ErrListRiderEarningsQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestNewGetParcelQuery_MalformedID(t *testing.T) {
	_, err := queries.NewGetParcelQuery("not-a-uuid")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestNewListRiderDeliveriesQuery_UnknownScope(t *testing.T) {
	_, err := queries.NewListRiderDeliveriesQuery(kernel.MustNewEmail("rider@x.com"), queries.DeliveryScope(9))
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestNewListRiderDeliveriesQuery_ZeroEmail(t *testing.T) {
	_, err := queries.NewListRiderDeliveriesQuery(kernel.Email{}, queries.ActiveDeliveries)
	require.Error(t, err)
}

func TestNewSearchUsersQuery_BlankTerm(t *testing.T) {
	_, err := queries.NewSearchUsersQuery("   ")
	require.Error(t, err)
	var required *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &required)
}

func TestNewListRidersByStatusQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListRidersByStatusQuery("retired")
	require.Error(t, err)
}

func TestNewListAvailableRidersQuery_Region(t *testing.T) {
	q, err := queries.NewListAvailableRidersQuery("  Dhaka ")
	require.NoError(t, err)
	assert.Equal(t, "Dhaka", q.Region())

	_, err = queries.NewListAvailableRidersQuery("")
	require.Error(t, err)
}

func TestNewGetUserRoleQuery_NormalizesEmail(t *testing.T) {
	q, err := queries.NewGetUserRoleQuery(" Boss@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "boss@x.com", q.Email().String())

	_, err = queries.NewGetUserRoleQuery("nope")
	require.Error(t, err)
}
