// Package wishlist keeps the books a user wants to buy later.
package wishlist
