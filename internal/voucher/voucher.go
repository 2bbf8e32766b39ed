package voucher

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/m04kA/tours-service/internal/domain"
)

const (
	pageMargin  = 20.0
	labelWidth  = 50.0
	lineHeight  = 8.0
	titleHeight = 12.0
)

// Renderer формирует PDF-ваучер по данным бронирования.
// Ничего не сохраняет: документ собирается на каждый запрос.
type Renderer struct {
	issuer string
}

// NewRenderer создает рендерер; issuer печатается в шапке документа
func NewRenderer(issuer string) *Renderer {
	return &Renderer{issuer: issuer}
}

// FileName имя файла для Content-Disposition
func FileName(b *domain.Booking) string {
	return fmt.Sprintf("voucher-%s.pdf", b.TrackingCode)
}

// Render пишет PDF в w. Для статусов кроме confirmed и completed возвращает ErrNotAvailable.
func (r *Renderer) Render(w io.Writer, b *domain.Booking) error {
	if b == nil || !b.VoucherAvailable() {
		return ErrNotAvailable
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// без сжатия поток страницы остаётся читаемым текстом
	pdf.SetCompression(false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle(fmt.Sprintf("Booking voucher %s", b.TrackingCode), false)
	pdf.SetCreator(r.issuer, false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, titleHeight, tr(r.issuer), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(0, lineHeight, "Booking Voucher", "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight)

	rows := []struct {
		label string
		value string
	}{
		{"Tracking code", b.TrackingCode},
		{"Name", b.CustomerName},
		{"Tour", b.ItemTitle},
		{"Travel date", b.TravelDate.Format(domain.DateFormat)},
		{"Guests", fmt.Sprintf("%d", b.NumberOfGuests)},
		{"Status", domain.PresentStatus(b.Status).Label},
	}

	for _, row := range rows {
		if row.value == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(labelWidth, lineHeight, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, lineHeight, tr(row.value), "", 1, "L", false, 0, "")
	}

	if b.SpecialRequests != nil && *b.SpecialRequests != "" {
		pdf.Ln(lineHeight / 2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, lineHeight, "Special requests:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHeight-2, tr(*b.SpecialRequests), "", "L", false)
	}

	pdf.Ln(lineHeight)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Please present this voucher on the day of travel.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: write output: %v", ErrRender, err)
	}

	return nil
}
