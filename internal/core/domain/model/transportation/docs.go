// Package transportation contains the Transportation aggregate: one scheduled
// movement of an inventory item between two storages using a vehicle and a
// driver.
//
// The aggregate owns the booking lifecycle state machine:
//
//	Planned ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are absorbing states; once reached, no update,
// delete, or further transition is permitted. Actual departure and arrival
// timestamps are stamped exactly once, by the start and complete transitions
// respectively, and are never overwritten.
package transportation
