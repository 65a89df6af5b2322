package parcel

import (
	"fmt"
)

// Status represents the lifecycle state of a package.
// It implements a linear state machine; there are no backward or skipping
// transitions.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered ──> Received
//	       (courier)   (courier, locker)  (owning client)
//
// The numeric value is the primary key of the matching delivery_statuses row,
// whose name column is only a display label.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The package waits for a courier.
	Pending

	// InProgress indicates a courier has picked the package up.
	InProgress

	// Delivered indicates the package sits in a locker awaiting its owner.
	Delivered

	// Received is terminal: the owner has collected the package.
	Received
)

// getStatusStrings returns the canonical display names of valid statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "In Progress",
		Delivered:  "Delivered",
		Received:   "Received",
	}
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Delivered, Received}
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return ErrInvalidStatus.WithCause(fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical display name, or "Unknown".
//
// Example:
//
//	fmt.Println(parcel.InProgress) // Output: "In Progress"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartDelivery transitions Pending to InProgress.
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, ErrInvalidStatusTransition) from any other status
func (s Status) StartDelivery() (Status, error) {
	return s.advance(Pending, InProgress)
}

// Deliver transitions InProgress to Delivered.
//
// A package must be picked up before it can be placed in a locker; placing a
// Pending or already Delivered package is rejected.
func (s Status) Deliver() (Status, error) {
	return s.advance(InProgress, Delivered)
}

// Receive transitions Delivered to Received.
func (s Status) Receive() (Status, error) {
	return s.advance(Delivered, Received)
}

func (s Status) advance(from, to Status) (Status, error) {
	if s != from {
		return 0, ErrInvalidStatusTransition.WithCause(
			fmt.Errorf("%s cannot move to %s", s.String(), to.String()),
		)
	}
	return to, nil
}
