// Package parcel provides the Parcel aggregate and its supporting value
// objects: the status state machine, route and dimension types, and the
// append-only status history.
//
// Key business rules:
//   - Parcels are created in requested status with a price derived from the
//     pricing engine at creation time; the price is never recomputed
//   - Driver-initiated status updates follow the authorized transition table;
//     admin-initiated accept/reject/assign are a separate authority
//   - Every successful transition records a StatusChanged event that handlers
//     turn into a history entry and, where required, a client notification
//   - delivered, cancelled and failed are terminal
package parcel
