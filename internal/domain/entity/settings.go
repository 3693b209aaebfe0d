package entity

import "github.com/shopspring/decimal"

// Temas de interfaz soportados.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system" // se resuelve contra la preferencia de la plataforma
)

// Settings configuración del emisor y de la numeración de facturas.
// Vive en memoria durante el proceso; los valores iniciales llegan
// desde la configuración externa al arrancar.
type Settings struct {
	CompanyName       string
	CompanyAddress    string
	CompanyIcon       string // PNG en base64 para el encabezado del PDF; vacío = solo nombre
	DeadlineDays      int    // días de plazo para la fecha de vencimiento (>= 0)
	DefaultHourlyRate decimal.Decimal
	BankName          string
	BankAccountNumber string
	FooterText        string
	InvoicePrefix     string
	InvoiceNumber     int64 // próximo consecutivo a asignar (>= 1)
	OutputPDFPath     string
	Currency          string // código ISO-4217
	Theme             string // ver constantes Theme*
	DateFormat        string // dates.FormatYMD o dates.FormatDMY
}
