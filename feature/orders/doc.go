// Package orders implements checkout and order history.
//
// Checkout copies each cart line into an order item with the unit price in
// effect at that moment (sale price when set). Payment capture happens outside
// this service, so orders start pending and an admin moves them on:
//
//	pending -> paid -> shipped
//	pending | paid -> cancelled
//
// Cancelling returns the quantities to stock.
package orders
