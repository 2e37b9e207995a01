package registry

import (
	"github.com/shopspring/decimal"
)

// Item is the read model of an inventory item.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Weight in kilograms. Zero means the weight is unknown and the
	// vehicle capacity guard is skipped.
	Weight decimal.Decimal `json:"weight"`
}
