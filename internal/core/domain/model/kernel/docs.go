// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the building blocks that aggregates are composed of:
//
//   - UUID: identity for entities and aggregates, wrapping github.com/google/uuid
//   - Money: non-negative monetary amounts in whole currency units
//
// All kernel types are immutable value objects. Their zero values are invalid
// and must be created through the provided constructor functions, which
// validate their inputs and guarantee the invariants the rest of the domain
// relies on.
package kernel
