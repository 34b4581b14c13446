package store

import (
	"testing"
)

// Compile-time checks that the interface is importable and usable.
func TestRentStoreInterfaceExists(t *testing.T) {
	// This test simply validates that the RentStore interface compiles
	// and the sentinel errors are accessible.
	_ = ErrNotFound
	_ = ErrValidation
	_ = ErrInvalidState
	_ = ErrConcurrentModification
	_ = TenantParams{}
	_ = PaymentParams{}

	// Ensure the interface is non-nil type.
	var _ RentStore
}
