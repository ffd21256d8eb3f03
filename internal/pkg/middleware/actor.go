package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/utils"
)

// ContextKeyActor stores the authenticated actor on the echo context
const ContextKeyActor = "actor"

// ActorMiddleware extracts the already-authorized actor from a bearer token.
// The dispatch core never re-derives authority: it receives a profile id plus
// the admin capability flag and checks them at its own guards.
func ActorMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := validateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			profileIDStr, ok := (*claims)["profile_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing profile_id claim")
			}

			profileID, err := uuid.Parse(fmt.Sprintf("%v", profileIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: profile_id is not a valid UUID")
			}

			admin, _ := (*claims)["admin"].(bool)

			c.Set(ContextKeyActor, models.Actor{ProfileID: profileID, Admin: admin})

			return next(c)
		}
	}
}

func validateToken(tokenString, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GetActor extracts the authenticated actor from the echo context
func GetActor(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(ContextKeyActor).(models.Actor)
	return actor, ok
}
