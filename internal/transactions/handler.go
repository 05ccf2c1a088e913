package transactions

import (
	"context"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/session"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// Create validates the body, resolves the session (minting a cookie on the
// first write), encodes direction into the sign of the stored amount and
// inserts the row. Replies 201 with no body.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}
	if req.Amount == nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount is required")
	}
	amount := *req.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be a non-negative number")
	}
	if req.Type == nil {
		return fiber.NewError(fiber.StatusBadRequest, "type is required")
	}
	typ := strings.TrimSpace(*req.Type)
	if typ != "credit" && typ != "debit" {
		return fiber.NewError(fiber.StatusBadRequest, "type must be credit or debit")
	}

	if typ == "debit" {
		amount = -amount
	}

	tx := Transaction{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Amount:    amount,
		SessionID: session.Resolve(c),
	}
	if err := h.Store.Insert(userContext(c), tx); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create transaction: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).Send(nil)
}

func (h *Handler) List(c *fiber.Ctx) error {
	items, err := h.Store.ListBySession(userContext(c), session.FromCtx(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list transactions: "+err.Error())
	}
	return c.JSON(listResponse{Transactions: items})
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id must be a valid UUID")
	}

	tx, err := h.Store.GetByID(userContext(c), session.FromCtx(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch transaction: "+err.Error())
	}
	return c.JSON(getResponse{Transaction: tx})
}

// Summary returns the session's net balance: credits minus debits, which is
// just SUM(amount) under the sign convention. Zero rows sum to zero.
func (h *Handler) Summary(c *fiber.Ctx) error {
	sum, err := h.Store.SumBySession(userContext(c), session.FromCtx(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute summary: "+err.Error())
	}
	return c.JSON(summaryResponse{Summary: summaryBody{Amount: sum}})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
