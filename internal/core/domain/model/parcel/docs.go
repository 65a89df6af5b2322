// Package parcel provides the package aggregate of the postbox domain. The name
// avoids the Go keyword; in the API and in storage the entity is "package".
//
// The package includes:
//   - Parcel: the aggregate root tracking owner, size, locker slot and status
//   - Status: the closed lifecycle enumeration and its transitions
//   - StatusLabel: the editable display name stored for each status
//   - Category: reference data (name, fragility)
//
// Key business rules:
//   - New parcels are Pending and not in a locker
//   - Pending -> InProgress when a courier picks the parcel up
//   - InProgress -> Delivered when a courier places it in a locker
//   - Delivered -> Received when the owning client collects it
package parcel
