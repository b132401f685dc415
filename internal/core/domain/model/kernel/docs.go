// Package kernel contains shared value objects used across the domain model:
// tracking numbers and geographic coordinates. All types here are immutable,
// validated on construction, and safe to pass by value.
//
// The wire formats defined here (the PMS-XXXXXXXX tracking-number format and
// the 7-decimal-place coordinate precision) are stable contracts that other
// subsystems depend on bit-for-bit.
package kernel
