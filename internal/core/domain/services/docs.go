// Package services provides domain services for rules that span the user and
// parcel aggregates.
//
// The package includes:
//   - LockerGatekeeper: decides who may open a locker and which lockers a client may open
//
// Services are pure: callers load the aggregates, the service decides, callers persist.
package services
