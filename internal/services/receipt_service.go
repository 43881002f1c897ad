package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"techpark/internal/catalog"
	"techpark/internal/domain/models"
	"techpark/internal/repositories"
	"techpark/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders the PDF receipt of a stored booking.
type ReceiptService struct {
	Repo      repositories.BookingRepository
	Catalog   *catalog.Catalog
	RequestID string
	Loader    func(context.Context, int64) (models.Booking, error)
}

func (s ReceiptService) load(ctx context.Context, id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Repo.GetByID(ctx, id)
}

func (s ReceiptService) catalog() *catalog.Catalog {
	if s.Catalog != nil {
		return s.Catalog
	}
	return catalog.Default()
}

// GenerateReceipt returns the PDF bytes and a download filename.
func (s ReceiptService) GenerateReceipt(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(b, s.catalog().Name(b.Location))
}

func buildReceiptPDF(b models.Booking, locationName string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Parking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "PARKING RECEIPT")
	pdf.Ln(12)

	// Core fonts are cp1252; runes outside it print as '.'.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Booking ID     : #%d", b.ID),
		fmt.Sprintf("Location       : %s", safe(locationName, "-")),
		fmt.Sprintf("Date           : %s", safe(utils.DisplayDate(b.Date), "-")),
		fmt.Sprintf("Time           : %s", safe(b.Time, "-")),
		fmt.Sprintf("Duration       : %s", utils.HoursLabel(b.Duration)),
		fmt.Sprintf("Vehicle        : %s", safe(b.Vehicle, "-")),
		fmt.Sprintf("Email          : %s", safe(b.Email, "-")),
		fmt.Sprintf("Payment Method : %s", safe(b.PaymentMethod, "-")),
		fmt.Sprintf("Payment Status : %s", safe(string(b.PaymentStatus), "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Amount Paid    : "+utils.FormatRupeeText(b.Amount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	if !b.CreatedAt.IsZero() {
		pdf.Cell(0, 6, "Issued "+utils.FormatDateTime(b.CreatedAt))
		pdf.Ln(6)
	}
	pdf.MultiCell(0, 6, "Thank you for booking with TechPark!", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", b.ID, safeFilenamePart(b.Vehicle))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

const maxFilenamePart = 40

// safeFilenamePart keeps ASCII letters, digits, '-' and '.'; every other rune becomes '_'.
func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == maxFilenamePart {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		n++
	}
	return b.String()
}
