package pdf_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
	"github.com/jhoicas/sinvoice-api/internal/infrastructure/pdf"
)

func fotoDePrueba() *invoicing.Snapshot {
	lineas := []invoicing.LineForPDF{
		{
			LineItem: entity.LineItem{
				Description: "Desarrollo backend",
				Date:        "2024-01-20",
				Hours:       decimal.NewFromInt(2),
				Rate:        decimal.NewFromInt(50),
			},
			Total: decimal.NewFromInt(100),
		},
		{
			LineItem: entity.LineItem{
				Description: "Revisión de código",
				Date:        "2024-01-22",
				Hours:       decimal.RequireFromString("1.5"),
				Rate:        decimal.NewFromInt(80),
			},
			Total: decimal.NewFromInt(120),
		},
	}
	return &invoicing.Snapshot{
		Settings: entity.Settings{
			CompanyName:       "ACME Studio",
			CompanyAddress:    "Bahnhofstrasse 1, 8001 Zürich",
			BankName:          "Banco Ejemplo",
			BankAccountNumber: "CH00 0000 0000 0000 0000 0",
			FooterText:        "Gracias por su confianza",
			Currency:          "CHF",
			DateFormat:        string(dates.FormatYMD),
		},
		Invoice: entity.CurrentInvoice{
			InvoiceDate: "2024-01-25",
			DueDate:     "2024-02-04",
		},
		Customer: entity.Customer{ID: 1, Name: "Prueba SRL", Address: "Av. Siempre Viva 742"},
		Number:   "INV-7",
		Lines:    lineas,
		Subtotal: decimal.NewFromInt(220),
	}
}

func TestGenerateInvoicePDF_ProduceUnDocumento(t *testing.T) {
	g := pdf.NewMarotoInvoiceGenerator()

	doc, err := g.GenerateInvoicePDF(context.Background(), fotoDePrueba())

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "los bytes deben ser un PDF")
}

// Un ícono corrupto no aborta la emisión: el encabezado cae al nombre de la
// empresa en texto.
func TestGenerateInvoicePDF_IconoRotoNoAborta(t *testing.T) {
	g := pdf.NewMarotoInvoiceGenerator()
	foto := fotoDePrueba()
	foto.Settings.CompanyIcon = base64.StdEncoding.EncodeToString([]byte("no es una imagen"))

	doc, err := g.GenerateInvoicePDF(context.Background(), foto)

	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestGenerateInvoicePDF_ConIconoPNG(t *testing.T) {
	g := pdf.NewMarotoInvoiceGenerator()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	foto := fotoDePrueba()
	foto.Settings.CompanyIcon = base64.StdEncoding.EncodeToString(buf.Bytes())

	doc, err := g.GenerateInvoicePDF(context.Background(), foto)

	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
