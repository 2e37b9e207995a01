package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetTransportationByIDQueryIsNotConstructed = errors.New(
		"GetTransportationByIDQuery must be created via NewGetTransportationByIDQuery constructor",
	)
)

// GetTransportationByIDQuery retrieves one booking by its identifier.
type GetTransportationByIDQuery struct {
	transportationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransportationByIDQuery creates a query for a single booking.
func NewGetTransportationByIDQuery(transportationID kernel.UUID) (GetTransportationByIDQuery, error) {
	if err := transportationID.Validate(); err != nil {
		return GetTransportationByIDQuery{}, err
	}

	return GetTransportationByIDQuery{
		transportationID: transportationID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransportationByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTransportationByIDQueryIsNotConstructed)
}

// TransportationID returns the id of the booking to fetch.
func (q GetTransportationByIDQuery) TransportationID() kernel.UUID {
	return q.transportationID
}
