// Package order provides domain entities and business logic for purchase
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, totals, and lifecycle
//   - Customer: A value object for the purchasing customer
//   - Product: A value object for one line item in the order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, a valid customer, and at least one product
//   - Every product must have a name, a positive price, and a positive quantity
//   - The order total is the sum of price * quantity over all line items, fixed at creation
//   - Order status follows a defined workflow: pending -> processing -> completed | cancelled
//   - Completed and cancelled are terminal; no transition leaves them, including self-transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
