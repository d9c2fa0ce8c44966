package middleware

import (
	"strings"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	jwtpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/jwt"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	principalKey = "principal"
	userIDKey    = "user_id"
	userRoleKey  = "user_role"
)

// JWTAuthMiddleware validates the bearer token and stores the caller principal
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				logger.Debug("Rejected bearer token", logger.ErrorField(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			principal, err := claims.Principal()
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}

			SetPrincipal(c, principal)
			return next(c)
		}
	}
}

// RequireRole lets the request through only for the listed roles
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Access denied: insufficient role")
		}
	}
}

// SetPrincipal stores the caller on the echo context
func SetPrincipal(c echo.Context, principal models.Principal) {
	c.Set(principalKey, principal)
	c.Set(userIDKey, principal.UserID)
	c.Set(userRoleKey, string(principal.Role))
}

// GetPrincipal returns the caller stored by JWTAuthMiddleware
func GetPrincipal(c echo.Context) (models.Principal, bool) {
	principal, ok := c.Get(principalKey).(models.Principal)
	return principal, ok
}
