// Package http exposes the booking engine over a REST API. Handlers translate
// between JSON payloads and the command/query layer; all business rules live
// below this package.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transportation"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createHandler   commands.CreateTransportationCommandHandler
	updateHandler   commands.UpdateTransportationCommandHandler
	deleteHandler   commands.DeleteTransportationCommandHandler
	startHandler    commands.StartTransportationCommandHandler
	completeHandler commands.CompleteTransportationCommandHandler
	cancelHandler   commands.CancelTransportationCommandHandler

	// Query handlers
	getByIDHandler queries.GetTransportationByIDQueryHandler
	listHandler    queries.ListTransportationsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createHandler commands.CreateTransportationCommandHandler,
	updateHandler commands.UpdateTransportationCommandHandler,
	deleteHandler commands.DeleteTransportationCommandHandler,
	startHandler commands.StartTransportationCommandHandler,
	completeHandler commands.CompleteTransportationCommandHandler,
	cancelHandler commands.CancelTransportationCommandHandler,
	getByIDHandler queries.GetTransportationByIDQueryHandler,
	listHandler queries.ListTransportationsQueryHandler,
) *Server {
	return &Server{
		createHandler:   createHandler,
		updateHandler:   updateHandler,
		deleteHandler:   deleteHandler,
		startHandler:    startHandler,
		completeHandler: completeHandler,
		cancelHandler:   cancelHandler,
		getByIDHandler:  getByIDHandler,
		listHandler:     listHandler,
	}
}

// RegisterRoutes mounts the booking API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/transportations", s.CreateTransportation)
	api.GET("/transportations", s.ListTransportations)
	api.GET("/transportations/:id", s.GetTransportation)
	api.PUT("/transportations/:id", s.UpdateTransportation)
	api.DELETE("/transportations/:id", s.DeleteTransportation)
	api.POST("/transportations/:id/start", s.StartTransportation)
	api.POST("/transportations/:id/complete", s.CompleteTransportation)
	api.POST("/transportations/:id/cancel", s.CancelTransportation)
}

// CreateTransportation handles POST /api/v1/transportations.
func (s *Server) CreateTransportation(ctx echo.Context) error {
	var req TransportationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	refs, err := parseReferences(req)
	if err != nil {
		return writeError(ctx, err)
	}

	window, err := req.window()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateTransportationCommand(
		kernel.NewUUID(), refs[0], refs[1], refs[2], refs[3], refs[4], window,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	booking, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(booking))
}

// GetTransportation handles GET /api/v1/transportations/:id.
func (s *Server) GetTransportation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTransportationByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	booking, err := s.getByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(booking))
}

// ListTransportations handles GET /api/v1/transportations.
func (s *Server) ListTransportations(ctx echo.Context) error {
	filter, err := parseFilter(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := parsePositiveParam(ctx, "page", 1)
	if err != nil {
		return writeError(ctx, err)
	}
	pageSize, err := parsePositiveParam(ctx, "pageSize", 0)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListTransportationsQuery(filter, page, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]TransportationResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, fromReadModel(item))
	}

	return ctx.JSON(http.StatusOK, ListTransportationsResponse{Total: result.Total, Items: items})
}

// UpdateTransportation handles PUT /api/v1/transportations/:id.
func (s *Server) UpdateTransportation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransportationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	refs, err := parseReferences(req)
	if err != nil {
		return writeError(ctx, err)
	}

	window, err := req.window()
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := req.status()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateTransportationCommand(
		id, refs[0], refs[1], refs[2], refs[3], refs[4], window, status,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	booking, err := s.updateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(booking))
}

// DeleteTransportation handles DELETE /api/v1/transportations/:id.
func (s *Server) DeleteTransportation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteTransportationCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTransportation handles POST /api/v1/transportations/:id/start.
func (s *Server) StartTransportation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartTransportationCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	booking, err := s.startHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(booking))
}

// CompleteTransportation handles POST /api/v1/transportations/:id/complete.
func (s *Server) CompleteTransportation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteTransportationCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	booking, err := s.completeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(booking))
}

// CancelTransportation handles POST /api/v1/transportations/:id/cancel.
func (s *Server) CancelTransportation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelTransportationCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	booking, err := s.cancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(booking))
}

func parseID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// parseReferences parses the five reference ids of a booking request in
// their canonical order: item, driver, vehicle, fromStorage, toStorage.
func parseReferences(req TransportationRequest) ([5]kernel.UUID, error) {
	var refs [5]kernel.UUID
	for i, raw := range []string{req.ItemID, req.DriverID, req.VehicleID, req.FromStorageID, req.ToStorageID} {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return refs, err
		}
		refs[i] = id
	}
	return refs, nil
}

func parseFilter(ctx echo.Context) (queries.TransportationFilter, error) {
	var filter queries.TransportationFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := transportation.StatusFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	// Fixed order so the first malformed id reported is deterministic.
	idParams := []struct {
		name   string
		target **kernel.UUID
	}{
		{"itemId", &filter.ItemID},
		{"driverId", &filter.DriverID},
		{"vehicleId", &filter.VehicleID},
		{"fromStorageId", &filter.FromStorageID},
		{"toStorageId", &filter.ToStorageID},
	}
	for _, param := range idParams {
		raw := ctx.QueryParam(param.name)
		if raw == "" {
			continue
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return filter, err
		}
		*param.target = &id
	}

	return filter, nil
}

func parsePositiveParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// writeError maps the error taxonomy onto HTTP statuses: missing references
// and bookings are 404, state-machine and availability rejections are 422,
// concurrent booking conflicts are 409, malformed input is 400, everything
// else is 500.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrOperationNotAllowed):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrResourceConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
