package invoicing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// LineForPDF línea enriquecida con su total (horas * tarifa) ya calculado.
type LineForPDF struct {
	entity.LineItem
	Total decimal.Decimal
}

// Snapshot instantánea finalizada que consume el renderer de documentos:
// configuración, factura en curso, cliente resuelto (obligatorio) y los
// totales derivados. Subtotal y total son el mismo valor: no existe
// concepto de impuestos ni descuentos.
type Snapshot struct {
	Settings entity.Settings
	Invoice  entity.CurrentInvoice
	Customer entity.Customer
	Number   string // "<prefijo>-<consecutivo>", ej. INV-101
	Lines    []LineForPDF
	Subtotal decimal.Decimal
}

// InvoicePDFGenerator puerto hacia el renderer del documento.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, snap *Snapshot) ([]byte, error)
}
