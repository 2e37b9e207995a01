package http

import (
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/errs"
)

// TransportationRequest is the JSON body of create and update calls. The
// scheduled instants must be supplied together or not at all; Status is only
// honored on update.
type TransportationRequest struct {
	ItemID             string     `json:"itemId"`
	DriverID           string     `json:"driverId"`
	VehicleID          string     `json:"vehicleId"`
	FromStorageID      string     `json:"fromStorageId"`
	ToStorageID        string     `json:"toStorageId"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture,omitempty"`
	ScheduledArrival   *time.Time `json:"scheduledArrival,omitempty"`
	Status             *string    `json:"status,omitempty"`
}

// TransportationResponse is the JSON representation of one booking.
type TransportationResponse struct {
	ID                 string     `json:"id"`
	ItemID             string     `json:"itemId"`
	DriverID           string     `json:"driverId"`
	VehicleID          string     `json:"vehicleId"`
	FromStorageID      string     `json:"fromStorageId"`
	ToStorageID        string     `json:"toStorageId"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture,omitempty"`
	ScheduledArrival   *time.Time `json:"scheduledArrival,omitempty"`
	ActualDeparture    *time.Time `json:"actualDeparture,omitempty"`
	ActualArrival      *time.Time `json:"actualArrival,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// ListTransportationsResponse is one page of bookings.
type ListTransportationsResponse struct {
	Total int64                    `json:"total"`
	Items []TransportationResponse `json:"items"`
}

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// window builds the optional scheduled window from the request, enforcing the
// both-or-neither rule on the two instants.
func (r TransportationRequest) window() (*kernel.TimeWindow, error) {
	if r.ScheduledDeparture == nil && r.ScheduledArrival == nil {
		return nil, nil
	}
	if r.ScheduledDeparture == nil {
		return nil, errs.NewValueIsRequiredError("scheduledDeparture")
	}
	if r.ScheduledArrival == nil {
		return nil, errs.NewValueIsRequiredError("scheduledArrival")
	}

	w, err := kernel.NewTimeWindow(*r.ScheduledDeparture, *r.ScheduledArrival)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// status parses the optional status field; absence means "leave it alone".
func (r TransportationRequest) status() (transportation.Status, error) {
	if r.Status == nil {
		return transportation.Unknown, nil
	}
	return transportation.StatusFromString(*r.Status)
}

func fromAggregate(booking *transportation.Transportation) TransportationResponse {
	resp := TransportationResponse{
		ID:              booking.ID().String(),
		ItemID:          booking.ItemID().String(),
		DriverID:        booking.DriverID().String(),
		VehicleID:       booking.VehicleID().String(),
		FromStorageID:   booking.FromStorageID().String(),
		ToStorageID:     booking.ToStorageID().String(),
		ActualDeparture: booking.ActualDeparture(),
		ActualArrival:   booking.ActualArrival(),
		Status:          booking.Status().String(),
		CreatedAt:       booking.CreatedAt(),
	}

	if w := booking.Window(); w != nil {
		start, end := w.Start(), w.End()
		resp.ScheduledDeparture = &start
		resp.ScheduledArrival = &end
	}

	return resp
}

func fromReadModel(item queries.TransportationResponse) TransportationResponse {
	return TransportationResponse{
		ID:                 item.ID.String(),
		ItemID:             item.ItemID.String(),
		DriverID:           item.DriverID.String(),
		VehicleID:          item.VehicleID.String(),
		FromStorageID:      item.FromStorageID.String(),
		ToStorageID:        item.ToStorageID.String(),
		ScheduledDeparture: item.ScheduledDeparture,
		ScheduledArrival:   item.ScheduledArrival,
		ActualDeparture:    item.ActualDeparture,
		ActualArrival:      item.ActualArrival,
		Status:             item.Status,
		CreatedAt:          item.CreatedAt,
	}
}
