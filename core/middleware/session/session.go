package session

import (
	"context"

	"bookstore/core/apperror"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Header carries the id of the signed-in user. It is set by the storefront
// gateway after it validated the session cookie.
const Header = "X-User-ID"

const localsKey = "actor"

// Roles known to the API.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Actor is the user performing the request.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// IsAdmin reports whether the actor may use admin procedures.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// Resolver loads the actor for a user id.
type Resolver interface {
	ResolveActor(ctx context.Context, userID string) (*Actor, error)
}

// New resolves the acting user when the session header is present.
// Requests without the header continue anonymously.
func New(resolver Resolver, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get(Header)
		if userID == "" {
			return c.Next()
		}

		actor, err := resolver.ResolveActor(c.UserContext(), userID)
		if err != nil {
			if apperror.CodeOf(err) == apperror.CodeNotFound {
				return response.Error(c, logger, apperror.Unauthorizedf("unknown session user"))
			}
			return response.Error(c, logger, err)
		}

		c.Locals(localsKey, actor)
		return c.Next()
	}
}

// RequireUser rejects anonymous requests.
func RequireUser(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := FromCtx(c); !ok {
			return response.Error(c, logger, apperror.Unauthorizedf("sign in required"))
		}
		return c.Next()
	}
}

// RequireAdmin rejects anonymous and non-admin requests.
func RequireAdmin(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := FromCtx(c)
		if !ok {
			return response.Error(c, logger, apperror.Unauthorizedf("sign in required"))
		}
		if !actor.IsAdmin() {
			return response.Error(c, logger, apperror.Forbiddenf("admin role required"))
		}
		return c.Next()
	}
}

// FromCtx returns the acting user, if any.
func FromCtx(c *fiber.Ctx) (*Actor, bool) {
	actor, ok := c.Locals(localsKey).(*Actor)
	return actor, ok && actor != nil
}

// WithActor stores an actor on the request. Tests use it to bypass resolution.
func WithActor(c *fiber.Ctx, actor *Actor) {
	c.Locals(localsKey, actor)
}
