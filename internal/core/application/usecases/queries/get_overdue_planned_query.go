package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetOverduePlannedQueryIsNotConstructed = errors.New(
		"GetOverduePlannedQuery must be created via NewGetOverduePlannedQuery constructor",
	)
)

// GetOverduePlannedQuery retrieves scheduled bookings still in PLANNED status
// whose scheduled departure has already passed. Used by the overdue watch job
// to flag bookings nobody started on time.
type GetOverduePlannedQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverduePlannedQuery creates an overdue query evaluated at asOf.
func NewGetOverduePlannedQuery(asOf time.Time) (GetOverduePlannedQuery, error) {
	if asOf.IsZero() {
		return GetOverduePlannedQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverduePlannedQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverduePlannedQuery) Validate() error {
	return q.guard.Validate(ErrGetOverduePlannedQueryIsNotConstructed)
}

// AsOf returns the evaluation instant.
func (q GetOverduePlannedQuery) AsOf() time.Time {
	return q.asOf
}
