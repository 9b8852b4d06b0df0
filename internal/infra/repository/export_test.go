//go:build unit

package repository

// Test-only constructors that accept mocked query sets.
var (
	NewReservationRepositoryWith  = newReservationRepository
	NewSlotOverrideRepositoryWith = newSlotOverrideRepository
)
