package queries

import (
	"errors"

	"quickdrop/internal/core/domain/model/rider"
	"quickdrop/internal/pkg/guard"
)

var ErrListRidersByStatusQueryIsNotConstructed = errors.New(
	"ListRidersByStatusQuery must be created via NewListRidersByStatusQuery constructor",
)

// ListRidersByStatusQuery backs the admin's pending-applications and
// active-riders screens.
type ListRidersByStatusQuery struct {
	status rider.Status
	guard  guard.ConstructorGuard
}

func NewListRidersByStatusQuery(status string) (ListRidersByStatusQuery, error) {
	parsed, err := rider.ParseStatus(status)
	if err != nil {
		return ListRidersByStatusQuery{}, err
	}
	return ListRidersByStatusQuery{status: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRidersByStatusQuery) Status() rider.Status { return q.status }

func (q ListRidersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListRidersByStatusQueryIsNotConstructed)
}
