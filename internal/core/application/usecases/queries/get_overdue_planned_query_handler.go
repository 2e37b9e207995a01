package queries

import (
	"context"

	"warehouse/internal/core/domain/model/transportation"

	"gorm.io/gorm"
)

// GetOverduePlannedQueryHandler finds bookings that missed their scheduled
// departure. Unscheduled bookings have no departure to miss and are never
// reported.
type GetOverduePlannedQueryHandler struct {
	db *gorm.DB
}

// NewGetOverduePlannedQueryHandler creates a handler for overdue-booking
// queries.
func NewGetOverduePlannedQueryHandler(db *gorm.DB) GetOverduePlannedQueryHandler {
	return GetOverduePlannedQueryHandler{db: db}
}

// Handle returns the PLANNED bookings whose scheduled departure lies strictly
// before the query instant, oldest departure first.
func (h GetOverduePlannedQueryHandler) Handle(
	ctx context.Context,
	query GetOverduePlannedQuery,
) ([]TransportationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []transportationRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+transportationColumns+`
		FROM transportations
		WHERE status = ?
		  AND scheduled_departure IS NOT NULL
		  AND scheduled_departure < ?
		ORDER BY scheduled_departure
	`, int(transportation.Planned), query.AsOf()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	overdue := make([]TransportationResponse, 0, len(rows))
	for _, row := range rows {
		item, convErr := rowToResponse(row)
		if convErr != nil {
			return nil, convErr
		}
		overdue = append(overdue, item)
	}

	return overdue, nil
}
