package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware configures CORS for the given origin ("*" allows all).
// Credentials are only allowed for a concrete origin; browsers reject
// credentialed wildcards, and the session cookie is a credential.
func CorsMiddleware(origin string) fiber.Handler {
	if origin == "" {
		origin = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowCredentials: origin != "*",
	})
}
