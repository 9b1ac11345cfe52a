package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderItemSpec identifies one requested line of a new order: a catalog
// product, optional extras, and a quantity. The referenced ids are resolved
// against the menu by the handler; the spec itself only checks shape.
type OrderItemSpec struct {
	productID kernel.UUID
	extraIDs  []kernel.UUID
	quantity  int
}

// NewOrderItemSpec creates a validated item specification.
// Returns an error if the product id is invalid, any extra id is invalid,
// or the quantity is not positive.
func NewOrderItemSpec(productID kernel.UUID, extraIDs []kernel.UUID, quantity int) (OrderItemSpec, error) {
	if err := productID.Validate(); err != nil {
		return OrderItemSpec{}, err
	}

	for _, extraID := range extraIDs {
		if err := extraID.Validate(); err != nil {
			return OrderItemSpec{}, err
		}
	}

	if quantity <= 0 {
		return OrderItemSpec{}, ErrQuantityIsInvalid
	}

	return OrderItemSpec{
		productID: productID,
		extraIDs:  extraIDs,
		quantity:  quantity,
	}, nil
}

// ProductID returns the id of the requested catalog product.
func (s OrderItemSpec) ProductID() kernel.UUID {
	return s.productID
}

// ExtraIDs returns the ids of the requested extras, possibly empty.
func (s OrderItemSpec) ExtraIDs() []kernel.UUID {
	return s.extraIDs
}

// Quantity returns how many units of the product were requested.
func (s OrderItemSpec) Quantity() int {
	return s.quantity
}

// PlaceOrderCommand represents a customer's request to place a new order.
// Carries the customer's contact details, the requested items, and free-form
// delivery notes.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := NewOrderItemSpec(burgerID, []kernel.UUID{cheeseID}, 2)
//	cmd, err := NewPlaceOrderCommand(
//	    orderID,
//	    "Juan Perez", "555-1111", "juan@email.com", "Main Street 123",
//	    []OrderItemSpec{item},
//	    "ring the bell",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	customerEmail   string
	deliveryAddress string
	items           []OrderItemSpec
	notes           string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates the order id and that at least one item spec was provided.
// Customer field validation is deferred to the Customer value object,
// which the handler constructs from these fields.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	deliveryAddress string,
	items []OrderItemSpec,
	notes string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerEmail:   customerEmail,
		deliveryAddress: deliveryAddress,
		notes:           notes,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's display name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's contact phone.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the customer's email, possibly empty.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// DeliveryAddress returns where the order should be delivered.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the requested item specifications.
func (c PlaceOrderCommand) Items() []OrderItemSpec {
	return c.items
}

// Notes returns free-form delivery notes, possibly empty.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItemSpec) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
