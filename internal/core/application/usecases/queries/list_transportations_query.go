package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrListTransportationsQueryIsNotConstructed = errors.New(
		"ListTransportationsQuery must be created via NewListTransportationsQuery constructor",
	)
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// TransportationFilter narrows a booking listing. Nil fields are not applied;
// set fields combine with AND.
type TransportationFilter struct {
	Status        *transportation.Status
	ItemID        *kernel.UUID
	DriverID      *kernel.UUID
	VehicleID     *kernel.UUID
	FromStorageID *kernel.UUID
	ToStorageID   *kernel.UUID
}

func (f TransportationFilter) validate() error {
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	for _, id := range []*kernel.UUID{f.ItemID, f.DriverID, f.VehicleID, f.FromStorageID, f.ToStorageID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ListTransportationsQuery retrieves a page of bookings matching a filter,
// newest first.
type ListTransportationsQuery struct {
	filter   TransportationFilter
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListTransportationsQuery creates a listing query. Pages are 1-based;
// pageSize 0 selects the default.
func NewListTransportationsQuery(filter TransportationFilter, page, pageSize int) (ListTransportationsQuery, error) {
	if err := filter.validate(); err != nil {
		return ListTransportationsQuery{}, err
	}

	if page < 1 {
		return ListTransportationsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return ListTransportationsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return ListTransportationsQuery{
		filter:   filter,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTransportationsQuery) Validate() error {
	return q.guard.Validate(ErrListTransportationsQueryIsNotConstructed)
}

// Filter returns the filter to apply.
func (q ListTransportationsQuery) Filter() TransportationFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListTransportationsQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListTransportationsQuery) PageSize() int {
	return q.pageSize
}

// ListTransportationsResponse is one page of bookings plus the total match
// count before pagination.
type ListTransportationsResponse struct {
	Total int64
	Items []TransportationResponse
}
