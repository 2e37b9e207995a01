package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/registry"
	"warehouse/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// referenceIDs carries the five entity references of a booking request.
type referenceIDs struct {
	ItemID        kernel.UUID
	DriverID      kernel.UUID
	VehicleID     kernel.UUID
	FromStorageID kernel.UUID
	ToStorageID   kernel.UUID
}

// resolvedReferences holds the read models produced by a full resolution.
type resolvedReferences struct {
	Item        registry.Item
	Driver      registry.Driver
	Vehicle     registry.Vehicle
	FromStorage registry.Storage
	ToStorage   registry.Storage
}

// Slot order of the resolution fan-out. Failures are reported in this order
// regardless of which lookup finished (or failed) first, so error messages
// are deterministic under concurrent failures.
const (
	slotItem = iota
	slotDriver
	slotVehicle
	slotFromStorage
	slotToStorage
	slotCount
)

// resolveReferences resolves all five references concurrently and joins the
// results. Every lookup runs to completion; the first failure in slot order
// is the one surfaced, carrying the kind and id of the reference that could
// not be resolved.
func resolveReferences(ctx context.Context, resolver ports.EntityResolver, ids referenceIDs) (resolvedReferences, error) {
	var (
		refs  resolvedReferences
		fails [slotCount]error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		refs.Item, fails[slotItem] = resolver.ResolveItem(gctx, ids.ItemID)
		return nil
	})
	g.Go(func() error {
		refs.Driver, fails[slotDriver] = resolver.ResolveDriver(gctx, ids.DriverID)
		return nil
	})
	g.Go(func() error {
		refs.Vehicle, fails[slotVehicle] = resolver.ResolveVehicle(gctx, ids.VehicleID)
		return nil
	})
	g.Go(func() error {
		refs.FromStorage, fails[slotFromStorage] = resolver.ResolveStorage(gctx, ids.FromStorageID)
		return nil
	})
	g.Go(func() error {
		refs.ToStorage, fails[slotToStorage] = resolver.ResolveStorage(gctx, ids.ToStorageID)
		return nil
	})
	_ = g.Wait()

	for _, err := range fails {
		if err != nil {
			return resolvedReferences{}, err
		}
	}

	return refs, nil
}

// resolveChangedReferences re-resolves only the references that differ from
// the stored booking. Unchanged references are not re-validated; this is a
// deliberate optimization, not laziness. Lookups run sequentially in slot
// order since at most a few references change per update.
func resolveChangedReferences(
	ctx context.Context,
	resolver ports.EntityResolver,
	current referenceIDs,
	next referenceIDs,
) error {
	if !next.ItemID.IsEqual(current.ItemID) {
		if _, err := resolver.ResolveItem(ctx, next.ItemID); err != nil {
			return err
		}
	}
	if !next.DriverID.IsEqual(current.DriverID) {
		if _, err := resolver.ResolveDriver(ctx, next.DriverID); err != nil {
			return err
		}
	}
	if !next.VehicleID.IsEqual(current.VehicleID) {
		if _, err := resolver.ResolveVehicle(ctx, next.VehicleID); err != nil {
			return err
		}
	}
	if !next.FromStorageID.IsEqual(current.FromStorageID) {
		if _, err := resolver.ResolveStorage(ctx, next.FromStorageID); err != nil {
			return err
		}
	}
	if !next.ToStorageID.IsEqual(current.ToStorageID) {
		if _, err := resolver.ResolveStorage(ctx, next.ToStorageID); err != nil {
			return err
		}
	}

	return nil
}
