package order

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when attempting to use an improperly
// initialized Customer. Customers must be created via NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer captures who an order is for and where it goes. It is recorded
// once when the order is placed and never changes afterwards.
//
// Customer is an immutable value object; the zero value is invalid and
// fails validation.
type Customer struct { //nolint:recvcheck //using for validation
	name            string
	phone           string
	email           string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer snapshot for an order.
//
// Parameters:
//   - name: Customer name (required)
//   - phone: Contact phone (required)
//   - email: Contact email (optional, may be empty)
//   - deliveryAddress: Destination address (required)
func NewCustomer(name string, phone string, email string, deliveryAddress string) (Customer, error) {
	customer := Customer{
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate checks if the Customer was properly constructed via NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the optional contact email. Empty when not provided.
func (c Customer) Email() string {
	return c.email
}

// DeliveryAddress returns the destination address for the order.
func (c Customer) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = address
	return nil
}
