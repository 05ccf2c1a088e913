package transactions

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"

	"github.com/pocketledger/backend/internal/session"
)

const statementMaxRows = 200

// Statement renders the session's ledger as a PDF: a net-balance header
// followed by one row per transaction in insertion order.
func (h *Handler) Statement(c *fiber.Ctx) error {
	ctx := userContext(c)
	sessionID := session.FromCtx(c)

	items, err := h.Store.ListBySession(ctx, sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed statement: "+err.Error())
	}
	net, err := h.Store.SumBySession(ctx, sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed statement totals: "+err.Error())
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Ledger Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02"))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Session: "+maskToken(sessionID))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	pdf.CellFormat(93, 10, "Entries", "1", 0, "C", true, 0, "")
	pdf.CellFormat(93, 10, "Net Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(93, 10, fmt.Sprintf("%d", len(items)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(93, 10, formatAmount(net), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)

	colW := []float64{30, 96, 30, 30}
	pdf.CellFormat(colW[0], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[1], 8, "TITLE", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[2], 8, "AMOUNT", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW[3], 8, "ID", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)

	for i, it := range items {
		if i >= statementMaxRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "...truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}
		pdf.CellFormat(colW[0], 8, it.CreatedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, truncate(it.Title, 52), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 8, formatAmount(it.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 8, maskToken(it.ID), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render statement: "+err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="statement.pdf"`)
	return c.Send(buf.Bytes())
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// maskToken keeps only the first UUID group; full tokens never end up in
// rendered output. ASCII only: the PDF uses core Helvetica.
func maskToken(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
