// Package services contains domain services: operations that express business
// rules spanning more than one aggregate and therefore do not belong to any
// single entity.
//
// AvailabilityChecker implements the resource-conflict rule: a driver or a
// vehicle can hold at most one non-terminal booking per overlapping scheduled
// window. It is pure coordination over the AvailabilityStore port; the actual
// overlap predicate lives in kernel.TimeWindow and the store query.
package services
