package kernel

import (
	"fmt"

	"fleetbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAddressIsNotConstructed indicates that an Address was not properly initialized through
// one of the constructor functions. This error is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress, AddressFromString, or AddressFromBytes")

// Address is a value object identifying an account in the fleet order book:
// a fractional owner, an operator, a payer, or the system's own fee account.
// It wraps the github.com/google/uuid implementation to provide domain-specific
// behavior and ensure immutability.
//
// The zero value of Address is invalid and must be constructed using one of
// the provided factory functions: NewAddress, AddressFromString, or
// AddressFromBytes.
//
// Address is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Create a new random account address
//	owner := kernel.NewAddress()
//
//	// Create from string representation
//	operator, err := kernel.AddressFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type Address struct {
	id uuid.UUID
}

// NewAddress generates a new random account address.
// This is the primary way to mint identifiers for accounts that do not
// exist yet, such as test owners or freshly provisioned operators.
//
// Example:
//
//	operator := kernel.NewAddress()
//	fmt.Println(operator.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewAddress() Address {
	return Address{
		id: uuid.New(),
	}
}

// AddressFromString parses an Address from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid address format.
// This function is typically used when reconstructing accounts from
// persistence or when parsing addresses from API requests.
//
// Example:
//
//	account, err := kernel.AddressFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid account address: %w", err)
//	}
func AddressFromString(s string) (Address, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address format: %w", err)
	}
	return Address{id: id}, nil
}

// AddressFromBytes creates an Address from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for address construction.
//
// This function is useful when addresses are stored as binary data
// in databases.
func AddressFromBytes(b []byte) (Address, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address format: %w", err)
	}
	addr := Address{id: id}
	if err = addr.Validate(); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// String returns the standard string representation of the address.
// The format is "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" where x is a hexadecimal digit.
// For a zero value Address, this returns "00000000-0000-0000-0000-000000000000".
//
// Example:
//
//	owner := kernel.NewAddress()
//	fmt.Printf("dividend paid to: %s\n", owner.String())
func (a Address) String() string {
	return a.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use addr.Bytes()[:].
func (a Address) Bytes() uuid.UUID {
	return a.id
}

// IsEqual compares two addresses for equality.
// Returns true if both addresses represent the same account, false otherwise.
//
// Example:
//
//	a := kernel.NewAddress()
//	b := kernel.NewAddress()
//	c := a
//
//	fmt.Println(a.IsEqual(b)) // false (different accounts)
//	fmt.Println(a.IsEqual(c)) // true (same account)
func (a Address) IsEqual(other Address) bool {
	return a.id == other.id
}

// Validate checks if the address is properly constructed.
// Returns ErrAddressIsNotConstructed if the address is a zero value.
// A valid Address is any address created through one of the constructor functions.
//
// Example:
//
//	func NewReservation(operator kernel.Address) (*Reservation, error) {
//	    if err := operator.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid operator address: %w", err)
//	    }
//	    return &Reservation{Operator: operator}, nil
//	}
func (a Address) Validate() error {
	if a.id == uuid.Nil {
		return ErrAddressIsNotConstructed
	}
	return nil
}
