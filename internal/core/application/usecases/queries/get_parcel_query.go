package queries

import (
	"errors"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery reads one parcel by id. It is public: anyone holding the id
// may look the parcel up.
type GetParcelQuery struct {
	parcelID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetParcelQuery parses the raw id; a malformed id is a ValueIsInvalidError.
func NewGetParcelQuery(rawID string) (GetParcelQuery, error) {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{parcelID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQuery) ParcelID() kernel.UUID { return q.parcelID }

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}
