// Package order provides domain entities and business logic for order management
// in the food-delivery system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A strictly forward state machine over the five lifecycle stages
//   - Role: The requesting actor kinds, with a single role-permission table
//   - Customer: The immutable customer snapshot captured at order creation
//   - LineItem: One product selection with its chosen extras and quantity
//
// Key business rules:
//   - Orders must contain at least one line item
//   - Status follows the fixed workflow Received -> Preparing -> Ready -> OnTheWay -> Delivered
//   - Status never regresses and never skips a stage; Delivered is terminal
//   - Restaurant roles advance kitchen stages, delivery roles advance transport
//     stages, admins advance anything, customers advance nothing
//   - Order totals are fixed at creation and never mutated afterwards
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
