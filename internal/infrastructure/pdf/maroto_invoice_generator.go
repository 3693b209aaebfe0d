// Package pdf implementa el renderer del documento de factura con Maroto v2.
//
// Layout de la página A4 (mismo orden que la pantalla del formulario):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ícono o nombre de empresa  │  N°, fecha, vencim.   │
//	│  Dirección de la empresa                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ISSUED TO: cliente + dirección                             │
//	│  PAY TO: banco + cuenta                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Description | Date | Hours | Rate (cur) | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUBTOTAL / TOTAL (idénticos: no hay impuestos)             │
//	│  FOOTER centrado                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	stdimage "image"
	_ "image/jpeg" // registro de decodificadores para detectar el formato del ícono
	_ "image/png"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorInk      = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeaderBg = &props.Color{Red: 241, Green: 243, Blue: 245}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator implementa invoicing.InvoicePDFGenerator.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator construye el generador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	snap *invoicing.Snapshot,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(15).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+snap.Number, true).
		WithAuthor(snap.Settings.CompanyName, true).
		Build()

	m := maroto.New(cfg)
	f := dates.Format(snap.Settings.DateFormat)

	m.AddRows(headerRow(snap, f))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(snap.Settings.CompanyAddress, props.Text{Size: 9, Color: colorGray, Top: 1}),
	)))
	m.AddRows(issuedToRow(snap))
	m.AddRows(payToRow(snap))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(snap.Settings.Currency))
	for _, r := range tableLineRows(snap, f) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRows(snap)...)

	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New(snap.Settings.FooterText, props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 8,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: ícono de empresa (o nombre como fallback) a la izquierda y
// el bloque de metadatos de la factura a la derecha.
//
// Si el ícono no decodifica, se recupera localmente cayendo al encabezado
// de solo texto; un ícono roto no aborta la emisión.
func headerRow(snap *invoicing.Snapshot, f dates.Format) core.Row {
	meta := col.New(5).Add(
		text.New("INVOICE NO:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 24}),
		text.New(snap.Number, props.Text{Size: 9, Align: align.Right}),
		text.New("DATE:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 24, Top: 5}),
		text.New(dates.FormatISO(snap.Invoice.InvoiceDate, f), props.Text{Size: 9, Align: align.Right, Top: 5}),
		text.New("DUE DATE:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 24, Top: 10}),
		text.New(dates.FormatISO(snap.Invoice.DueDate, f), props.Text{Size: 9, Align: align.Right, Top: 10}),
	)

	if raw, ext, ok := decodeIcon(snap.Settings.CompanyIcon); ok {
		return row.New(22).Add(
			col.New(7).Add(image.NewFromBytes(raw, ext, props.Rect{Percent: 90})),
			meta,
		)
	}
	return row.New(22).Add(
		col.New(7).Add(text.New(snap.Settings.CompanyName, props.Text{
			Style: fontstyle.Bold, Size: 18, Color: colorInk, Top: 4,
		})),
		meta,
	)
}

// issuedToRow: bloque del cliente resuelto.
func issuedToRow(snap *invoicing.Snapshot) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("ISSUED TO:", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
			text.New(snap.Customer.Name, props.Text{Size: 9, Top: 7}),
			text.New(snap.Customer.Address, props.Text{Size: 9, Top: 12, Color: colorGray}),
		),
	)
}

// payToRow: datos bancarios del emisor.
func payToRow(snap *invoicing.Snapshot) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("PAY TO:", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
			text.New(snap.Settings.BankName, props.Text{Size: 9, Top: 7}),
			text.New("Account No.: "+snap.Settings.BankAccountNumber, props.Text{Size: 9, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas con fondo gris claro.
func tableHeaderRow(currencyCode string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorInk, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorHeaderBg}).Add(
		h("DESCRIPTION", 4, align.Left),
		h("DATE", 3, align.Left),
		h("HOURS", 1, align.Right),
		h(fmt.Sprintf("RATE (%s)", currencyCode), 2, align.Right),
		h("TOTAL", 2, align.Right),
	)
}

// tableLineRows: una fila por línea; montos con dos decimales, a la derecha.
func tableLineRows(snap *invoicing.Snapshot, f dates.Format) []core.Row {
	result := make([]core.Row, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.Description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(dates.FormatISO(l.Date, f), props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(1).Add(text.New(l.Hours.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.Rate.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: SUBTOTAL y TOTAL son el mismo valor (sin impuestos ni
// descuentos en este dominio).
func totalsRows(snap *invoicing.Snapshot) []core.Row {
	amount := fmt.Sprintf("%s %s", snap.Settings.Currency, snap.Subtotal.StringFixed(2))
	totalRow := func(label string, bold fontstyle.Type) core.Row {
		return row.New(7).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2})),
			col.New(2).Add(text.New(amount, props.Text{Style: bold, Size: 10, Align: align.Right, Right: 1})),
		)
	}
	return []core.Row{
		totalRow("SUBTOTAL", fontstyle.Normal),
		totalRow("TOTAL", fontstyle.Bold),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// decodeIcon decodifica el ícono base64 y detecta su formato. Cualquier
// fallo devuelve ok == false y el caller usa el encabezado de texto.
func decodeIcon(b64 string) ([]byte, extension.Type, bool) {
	if b64 == "" {
		return nil, "", false
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", false
	}
	_, format, err := stdimage.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", false
	}
	switch format {
	case "png":
		return raw, extension.Png, true
	case "jpeg":
		return raw, extension.Jpg, true
	default:
		return nil, "", false
	}
}
