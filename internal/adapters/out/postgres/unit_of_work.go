// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern for booking operations. A unit of work scopes one business
// transaction: repositories obtained from it run inside the transaction once
// Begin has been called, and the advisory resource locks taken through them
// last until commit or rollback.
package postgres

import (
	"context"

	"warehouse/internal/adapters/out/postgres/transportrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state, isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates changed within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again on an instance with an
// open transaction is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction, making all changes permanent and releasing
// any advisory locks taken within it.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and releases its advisory locks.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TransportationRepository returns the booking repository. Before Begin it
// reads committed state on the main connection; after Begin it is bound to
// the transaction.
func (uow *GormUnitOfWork) TransportationRepository() ports.TransportationRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return transportrepo.NewGormTransportationRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call this on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
