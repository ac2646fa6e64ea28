package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrStreetAddressIsNotConstructed is returned when a StreetAddress was not
// created through NewStreetAddress or RestoreStreetAddress.
var ErrStreetAddressIsNotConstructed = errors.New(
	"StreetAddress must be created via NewStreetAddress or RestoreStreetAddress constructors")

// Field length limits for delivery addresses.
const (
	maxStreetLength     = 50
	maxPostalCodeLength = 10
	maxCityLength       = 50
)

// StreetAddress is the delivery address value object of an order. It carries
// its own identity for persistence and is immutable once built.
type StreetAddress struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	street     string
	postalCode string
	city       string

	guard guard.ConstructorGuard
}

// NewStreetAddress creates a validated address with a fresh identity.
// All fields are required; street and city are limited to 50 characters,
// postal code to 10.
func NewStreetAddress(street, postalCode, city string) (StreetAddress, error) {
	address := StreetAddress{
		id:    kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setPostalCode(postalCode),
		address.setCity(city),
	); err != nil {
		return StreetAddress{}, err
	}

	return address, nil
}

// RestoreStreetAddress rebuilds an address from persistence, keeping its
// stored identity.
func RestoreStreetAddress(id kernel.UUID, street, postalCode, city string) (StreetAddress, error) {
	if err := id.Validate(); err != nil {
		return StreetAddress{}, err
	}

	address, err := NewStreetAddress(street, postalCode, city)
	if err != nil {
		return StreetAddress{}, err
	}

	address.id = id
	return address, nil
}

// Validate ensures the address was created through a constructor.
func (a StreetAddress) Validate() error {
	return a.guard.Validate(ErrStreetAddressIsNotConstructed)
}

// ID returns the address identity used by persistence.
func (a StreetAddress) ID() kernel.UUID {
	return a.id
}

// Street returns the street line.
func (a StreetAddress) Street() string {
	return a.street
}

// PostalCode returns the postal code.
func (a StreetAddress) PostalCode() string {
	return a.postalCode
}

// City returns the city name.
func (a StreetAddress) City() string {
	return a.city
}

func (a *StreetAddress) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if len(street) > maxStreetLength {
		return errs.NewValueIsOutOfRangeError("street length", len(street), 1, maxStreetLength)
	}
	a.street = street
	return nil
}

func (a *StreetAddress) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	if len(postalCode) > maxPostalCodeLength {
		return errs.NewValueIsOutOfRangeError("postal code length", len(postalCode), 1, maxPostalCodeLength)
	}
	a.postalCode = postalCode
	return nil
}

func (a *StreetAddress) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if len(city) > maxCityLength {
		return errs.NewValueIsOutOfRangeError("city length", len(city), 1, maxCityLength)
	}
	a.city = city
	return nil
}
