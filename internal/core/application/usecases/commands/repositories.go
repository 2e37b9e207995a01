// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, reference resolution,
// transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TransportationRepoFactory provides access to the transportation
	// repository. Before Begin the repository reads committed state;
	// after Begin it is bound to the transaction, and advisory resource
	// locks taken through it last until commit or rollback.
	TransportationRepoFactory interface {
		TransportationRepository() ports.TransportationRepository
	}

	// TransportationUoW manages transactions for booking operations.
	TransportationUoW interface {
		TxManager
		TransportationRepoFactory
	}

	// TransportationUoWFactory creates new unit of work instances.
	// Each command handler invocation gets its own instance.
	TransportationUoWFactory interface {
		Create() TransportationUoW
	}
)
