package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pocketledger/backend/internal/session"
	"github.com/pocketledger/backend/internal/transactions"
)

type Router struct {
	Tx *transactions.Handler

	// WriteLimiter guards the create route; nil disables rate limiting
	// (tests run without it).
	WriteLimiter fiber.Handler
}

// RegisterRoutes wires the ledger surface. Static paths register before the
// /:id wildcard so /summary, /statement and /health are never captured by it.
func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Use(RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	requireSession := session.Require()

	if r.WriteLimiter != nil {
		app.Post("/", r.WriteLimiter, r.Tx.Create)
	} else {
		app.Post("/", r.Tx.Create)
	}
	app.Get("/", requireSession, r.Tx.List)
	app.Get("/summary", requireSession, r.Tx.Summary)
	app.Get("/statement", requireSession, r.Tx.Statement)
	app.Get("/:id", requireSession, r.Tx.GetByID)
}

// RequestLogger logs method, path, status and duration for every request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
