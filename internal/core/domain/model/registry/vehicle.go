package registry

import (
	"github.com/shopspring/decimal"
)

// Vehicle is the read model of a vehicle that can be booked for a movement.
type Vehicle struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`

	// Capacity in kilograms. Zero means unlimited for the purposes of
	// the item-weight guard.
	Capacity decimal.Decimal `json:"capacity"`
}

// CanCarry reports whether the vehicle can take an item of the given weight.
// An unknown capacity or weight (zero) never rejects.
func (v Vehicle) CanCarry(weight decimal.Decimal) bool {
	if v.Capacity.IsZero() || weight.IsZero() {
		return true
	}
	return weight.LessThanOrEqual(v.Capacity)
}
