package queries

import (
	"errors"
	"strings"

	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

var ErrListAvailableRidersQueryIsNotConstructed = errors.New(
	"ListAvailableRidersQuery must be created via NewListAvailableRidersQuery constructor",
)

// ListAvailableRidersQuery finds active riders in the parcel's sender region.
type ListAvailableRidersQuery struct {
	region string
	guard  guard.ConstructorGuard
}

func NewListAvailableRidersQuery(region string) (ListAvailableRidersQuery, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return ListAvailableRidersQuery{}, errs.NewValueIsRequiredError("region")
	}
	return ListAvailableRidersQuery{region: region, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableRidersQuery) Region() string { return q.region }

func (q ListAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableRidersQueryIsNotConstructed)
}
