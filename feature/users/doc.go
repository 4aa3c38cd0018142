// Package users owns the user accounts. Its service resolves the X-User-ID
// session header into an actor for the session middleware.
package users
