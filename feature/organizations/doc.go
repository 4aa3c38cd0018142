// Package organizations manages publishers, distributors and their contacts.
// All routes are admin only.
package organizations
