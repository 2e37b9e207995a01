package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListTransportationsQueryHandler retrieves filtered pages of bookings.
type ListTransportationsQueryHandler struct {
	db *gorm.DB
}

// NewListTransportationsQueryHandler creates a handler for booking listings.
func NewListTransportationsQueryHandler(db *gorm.DB) ListTransportationsQueryHandler {
	return ListTransportationsQueryHandler{db: db}
}

// Handle counts the matching bookings and returns the requested page ordered
// by creation time, newest first, with id as a tiebreaker so pagination is
// stable across rows created in the same instant.
func (h ListTransportationsQueryHandler) Handle(
	ctx context.Context,
	query ListTransportationsQuery,
) (ListTransportationsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListTransportationsResponse{}, err
	}

	// Each finisher gets its own statement; a *gorm.DB is not reusable after
	// Count has executed on it.
	var total int64
	if err := h.applyFilter(h.db.WithContext(ctx).Table("transportations"), query.Filter()).
		Count(&total).Error; err != nil {
		return ListTransportationsResponse{}, err
	}

	var rows []transportationRow
	err := h.applyFilter(h.db.WithContext(ctx).Table("transportations"), query.Filter()).
		Select(transportationColumns).
		Order("created_at DESC, id").
		Limit(query.PageSize()).
		Offset((query.Page() - 1) * query.PageSize()).
		Scan(&rows).Error
	if err != nil {
		return ListTransportationsResponse{}, err
	}

	items := make([]TransportationResponse, 0, len(rows))
	for _, row := range rows {
		item, convErr := rowToResponse(row)
		if convErr != nil {
			return ListTransportationsResponse{}, convErr
		}
		items = append(items, item)
	}

	return ListTransportationsResponse{Total: total, Items: items}, nil
}

// applyFilter chains one WHERE clause per set filter field.
func (h ListTransportationsQueryHandler) applyFilter(scope *gorm.DB, filter TransportationFilter) *gorm.DB {
	if filter.Status != nil {
		scope = scope.Where("status = ?", int(*filter.Status))
	}
	if filter.ItemID != nil {
		scope = scope.Where("item_id = ?", filter.ItemID.Bytes())
	}
	if filter.DriverID != nil {
		scope = scope.Where("driver_id = ?", filter.DriverID.Bytes())
	}
	if filter.VehicleID != nil {
		scope = scope.Where("vehicle_id = ?", filter.VehicleID.Bytes())
	}
	if filter.FromStorageID != nil {
		scope = scope.Where("from_storage_id = ?", filter.FromStorageID.Bytes())
	}
	if filter.ToStorageID != nil {
		scope = scope.Where("to_storage_id = ?", filter.ToStorageID.Bytes())
	}
	return scope
}
