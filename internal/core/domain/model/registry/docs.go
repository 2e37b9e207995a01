// Package registry holds the read models for the entities a transportation
// booking references: items, drivers, vehicles, and storages. Their full CRUD
// lifecycle is owned elsewhere; the booking engine only resolves them by id
// through the EntityResolver port and reads the few attributes it needs.
//
// The models carry exported fields with JSON tags so resolver decorators
// (such as the redis cache) can serialize them without extra mapping.
package registry
