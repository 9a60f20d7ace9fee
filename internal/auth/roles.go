package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mrpavithran/WorkShop/internal/domain"
)

// RequireCreator ensures a CREATOR is authenticated.
func RequireCreator() fiber.Handler {
	return requireRole(domain.RoleCreator)
}

// RequireParticipant ensures a PARTICIPANT is authenticated.
func RequireParticipant() fiber.Handler {
	return requireRole(domain.RoleParticipant)
}

func requireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if principal.Role != role {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// RequireAnyRole ensures the caller is authenticated with any role.
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
