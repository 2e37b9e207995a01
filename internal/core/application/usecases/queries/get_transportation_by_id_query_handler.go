package queries

import (
	"context"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTransportationByIDQueryHandler reads one booking straight from the
// database, bypassing the aggregate.
type GetTransportationByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetTransportationByIDQueryHandler creates a handler for single-booking
// reads.
func NewGetTransportationByIDQueryHandler(db *gorm.DB) GetTransportationByIDQueryHandler {
	return GetTransportationByIDQueryHandler{db: db}
}

// Handle fetches the booking. A missing id fails with an ObjectNotFoundError
// whose ParamName is "transportation".
func (h GetTransportationByIDQueryHandler) Handle(
	ctx context.Context,
	query GetTransportationByIDQuery,
) (TransportationResponse, error) {
	if err := query.Validate(); err != nil {
		return TransportationResponse{}, err
	}

	var row transportationRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT `+transportationColumns+`
		FROM transportations
		WHERE id = ?
	`, query.TransportationID().Bytes()).Scan(&row)
	if result.Error != nil {
		return TransportationResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TransportationResponse{}, errs.NewObjectNotFoundError(
			"transportation", query.TransportationID().String())
	}

	return rowToResponse(row)
}
