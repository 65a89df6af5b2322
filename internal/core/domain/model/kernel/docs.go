// Package kernel provides the building blocks shared by every aggregate in the
// postbox domain.
//
// The package includes:
//   - Entity: identity plus the audit timestamps every persisted record carries
//   - Aggregate: the contract repositories rely on to validate and re-stamp aggregates
//
// Identity is a database-assigned int64. An Entity with a zero id is transient:
// it has been constructed in memory but not yet stored.
package kernel
