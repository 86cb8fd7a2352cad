package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"
	"huduma-portal/internal/repositories"
	"huduma-portal/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a bill receipt PDF for a priced request. Receipts
// are keyed by request code, the same unguessable handle tracking uses, so
// payer details are never reachable through a guessable numeric id.
type ReceiptService struct {
	Bills     repositories.BillRequestRepository
	RequestID string
	Loader    func(string) (models.TrackingRecord, error)
}

func (s ReceiptService) load(requestCode string) (models.TrackingRecord, error) {
	if s.Loader != nil {
		return s.Loader(requestCode)
	}
	return s.Bills.GetTracking(requestCode)
}

// GenerateReceipt builds the PDF. Requests without a control number cannot
// have a receipt yet and return a conflict.
func (s ReceiptService) GenerateReceipt(requestCode string) ([]byte, string, error) {
	code := strings.TrimSpace(requestCode)
	if len(code) < MinTrackingCodeLength {
		return nil, "", domain.ValidationError{
			Field: "requestCode",
			Msg:   fmt.Sprintf("tracking number must be at least %d characters", MinTrackingCodeLength),
		}
	}

	rec, err := s.load(code)
	if err != nil {
		return nil, "", err
	}
	if rec.ControlNumberDetails == nil {
		return nil, "", domain.ConflictError{
			Resource: "receipt",
			Msg:      "control number not yet generated for this request",
		}
	}
	utils.LogEvent(s.RequestID, "receipts", "generate", fmt.Sprintf("request_code=%s", rec.RequestCode))
	return buildReceiptPDF(rec)
}

func buildReceiptPDF(rec models.TrackingRecord) ([]byte, string, error) {
	d := rec.ControlNumberDetails

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bill Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BILL RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Tracking Number : %s", safe(rec.RequestCode, "-")),
		fmt.Sprintf("Control Number  : %s", safe(d.ControlNumber, "-")),
		fmt.Sprintf("Service         : %s (%s)", safe(rec.ServiceItem.ServiceName, "-"), safe(rec.ServiceItem.ServiceCode, "-")),
		fmt.Sprintf("Service Group   : %s", safe(rec.ServiceItem.Group.GroupName, "-")),
		fmt.Sprintf("Payer           : %s", safe(d.PayerName, "-")),
		fmt.Sprintf("Phone           : %s", safe(d.PayerPhone, "-")),
		fmt.Sprintf("Amount          : %s", safe(d.BillAmount, "-")),
		fmt.Sprintf("Equivalent      : %s", safe(d.BillEqvAmount, "-")),
		fmt.Sprintf("Requested       : %s", safe(d.RequestedDate, "-")),
		fmt.Sprintf("Payment Status  : %s", safe(d.PaymentStatus, "-")),
		fmt.Sprintf("Printed         : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if d.BillDescription != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, d.BillDescription, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(rec.RequestCode))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
	if out == "" {
		return "receipt"
	}
	return out
}
