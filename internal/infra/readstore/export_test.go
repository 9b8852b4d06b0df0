//go:build unit

package readstore

var (
	NewAvailabilityReadStoreWith = newAvailabilityReadStore
	NewReservationReadStoreWith  = newReservationReadStore
)
