// Package order provides the Order aggregate root of the restaurant ordering workflow
// and its delivery status state machine.
//
// The package includes:
//   - Order: identity (order number), money fields, timestamps, driver snapshot and line items
//   - LineItem: one (menu item, quantity) entry owned by an order
//   - Status: PENDING -> COMPLETED, with DELIVERED as an alias of COMPLETED
//   - Events recorded on creation, driver assignment, update and completion
//
// Key business rules:
//   - An order is built only from menu items that were resolved beforehand
//   - Assigning or clearing a driver never changes the status
//   - Completing stamps the delivery time, every time it is called
//   - Nothing moves an order out of COMPLETED/DELIVERED
package order
