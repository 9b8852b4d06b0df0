package errs

// Error classes. Specific errors are marked with one of these so transport
// code can map them to a status without knowing every sentinel.
var (
	// Malformed or out-of-range input; rejected before any store access.
	ErrValidation = New("validation error")
	// Rejected after a state check (blocked, occupied, full, too soon).
	ErrConflict = New("conflict")
	ErrNotFound = New("not found")
)
