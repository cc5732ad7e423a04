package printing

// quote_printer.go renders a quote or order as an A4 page:
//   - business letterhead
//   - type and date
//   - client table
//   - part lines (qty, description, unit cash price, line total)
//   - cash and installment totals
//   - signature line

import (
	"bytes"
	"fmt"

	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/infrastructure/config"
	"mecanica_rff/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const notAvailable = "Não disponível"

type QuotePrinter struct {
	letterhead config.LetterheadConfig
	compress   bool
}

var _ interfaces.IQuotePrinter = (*QuotePrinter)(nil)

func NewQuotePrinter(letterhead config.LetterheadConfig) *QuotePrinter {
	return &QuotePrinter{letterhead: letterhead, compress: true}
}

// Render prints the stored snapshot of q. Nothing is recomputed except the
// per-line prices, which derive from the line's own snapshot.
func (p *QuotePrinter) Render(q entities.Quote) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(p.compress)
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(fmt.Sprintf("%s %s", q.Type.Label(), q.ID), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	// ── Letterhead ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 7, tr(p.letterhead.Title), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 7, tr(p.letterhead.Subtitle), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 5, tr(p.letterhead.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, tr(p.letterhead.Phone), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.Line(left, pdf.GetY(), pageW-right, pdf.GetY())
	pdf.Ln(3)

	// ── Type and date ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW/2, 7, tr(q.Type.Label()), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 7, tr("Data: "+orNotAvailable(q.Date)), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// ── Client ───────────────────────────────────────────────────────────────
	labelW := 35.0
	for _, row := range [][2]string{
		{"Nome", q.Client.Name},
		{"Endereço", q.Client.Address},
		{"Carro", q.Client.Vehicle},
		{"Placa", q.Client.Plate},
		{"Cidade", q.Client.City},
		{"CPF/CNPJ", q.Client.TaxID},
		{"Telefone", q.Client.Phone},
	} {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-labelW, 6, tr(orNotAvailable(row[1])), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Lines ────────────────────────────────────────────────────────────────
	colQty := contentW * 0.10
	colDesc := contentW * 0.50
	colUnit := contentW * 0.20
	colTotal := contentW * 0.20

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colQty, 7, "Qnt.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colDesc, 7, tr("Descrição do Produto/Serviço"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colUnit, 7, tr("Valor Unitário"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	lines := q.OrderedLines()
	if len(lines) == 0 {
		pdf.CellFormat(contentW, 6, tr("Nenhuma peça disponível"), "1", 1, "C", false, 0, "")
	}
	for _, l := range lines {
		name := l.Name
		if name == "" {
			name = "Peça não especificada"
		}
		pdf.CellFormat(colQty, 6, fmt.Sprintf("%d", l.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colDesc, 6, truncate(pdf, tr(name), colDesc-2), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colUnit, 6, money(entities.UnitCashPrice(l)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, money(entities.LineCashTotal(l)), "1", 1, "R", false, 0, "")
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colQty+colDesc+colUnit, 7, tr("Total À Vista"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 7, money(q.CashTotal), "1", 1, "R", false, 0, "")
	pdf.CellFormat(colQty+colDesc+colUnit, 7, "Total Parcelado", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 7, money(q.InstallmentTotal), "1", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Parcelado em até %dX SEM JUROS", entities.MaxInstallments)), "", 1, "R", false, 0, "")

	// ── Signature ────────────────────────────────────────────────────────────
	pdf.Ln(20)
	sigW := contentW * 0.6
	sigX := left + (contentW-sigW)/2
	pdf.Line(sigX, pdf.GetY(), sigX+sigW, pdf.GetY())
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Assinatura do Cliente", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render %s: %w", q.ID, err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return "R$ " + decimal.NewFromFloat(v).StringFixed(2)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// truncate shortens an already translated (single-byte) string until it fits
// in width at the current font.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
