// Package user provides the User aggregate, its role assignments and the NFC card
// binding rules.
//
// The package includes:
//   - User: an account identified by email that may hold one NFC serial
//   - Role: a named reference row ("Client", "Courier")
//   - Assignment: the link between a user and a role
//
// Key business rules:
//   - Email must be non-blank and contain "@"
//   - A user holds at most one NFC serial; binding a new one replaces the old one
//   - Binding the serial a user already holds is a no-op
//   - Global uniqueness of serials is enforced by storage, not by the aggregate
package user
