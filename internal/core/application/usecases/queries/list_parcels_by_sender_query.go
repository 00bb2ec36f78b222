package queries

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrListParcelsBySenderQueryIsNotConstructed = errors.New(
	"ListParcelsBySenderQuery must be created via NewListParcelsBySenderQuery constructor",
)

// ListParcelsBySenderQuery lists the parcels a user has booked, newest first.
type ListParcelsBySenderQuery struct {
	sender kernel.Email
	guard  guard.ConstructorGuard
}

func NewListParcelsBySenderQuery(sender kernel.Email) (ListParcelsBySenderQuery, error) {
	if err := sender.Validate(); err != nil {
		return ListParcelsBySenderQuery{}, err
	}
	return ListParcelsBySenderQuery{sender: sender, guard: guard.NewConstructorGuard()}, nil
}

func (q ListParcelsBySenderQuery) Sender() kernel.Email { return q.sender }

func (q ListParcelsBySenderQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsBySenderQueryIsNotConstructed)
}
