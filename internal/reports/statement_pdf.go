package reports

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"

	"github.com/voltio/voltio-backend/internal/auth"
	"github.com/voltio/voltio-backend/internal/bookings"
)

type Handler struct {
	Bookings bookings.Store
}

func NewHandler(store bookings.Store) *Handler {
	return &Handler{Bookings: store}
}

// StatementPDF handles GET /api/users/booking/statement. It renders the
// subject's bookings over the requested window (last 30 days by default)
// as a downloadable PDF.
func (h *Handler) StatementPDF(c *fiber.Ctx) error {
	userID := auth.UserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		end := time.Now()
		start := end.AddDate(0, 0, -29)
		from = start.Format("2006-01-02")
		to = end.Format("2006-01-02")
	}

	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}

	items, err := h.Bookings.ListByUserBetween(userContext(c), userID, fromDate, toDate)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch bookings")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Booking Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+from+" to "+to)
	pdf.Ln(5)
	pdf.Cell(0, 6, "User: "+shortID(userID))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 10)

	colW := []float64{30, 30, 60, 40, 22}
	header := func() {
		pdf.CellFormat(colW[0], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "SLOT", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, "STATION", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "CAR", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[4], 8, "ID", "1", 1, "C", true, 0, "")
	}
	header()

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)

	for _, b := range items {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 10)
			header()
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(colW[0], 8, b.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, b.Slot, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, shortID(b.StationID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, shortID(b.CarID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[4], 8, shortID(b.ID), "1", 1, "C", false, 0, "")
	}

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No bookings in this period", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render statement")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="booking-statement-`+from+`-`+to+`.pdf"`)
	return c.Send(buf.Bytes())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
