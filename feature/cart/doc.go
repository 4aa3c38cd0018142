// Package cart keeps the shopping cart of each user. One line per variant;
// quantities are checked against the variant stock on every change.
package cart
