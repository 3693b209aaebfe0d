package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SettingsResponse configuración completa para GET /api/settings.
// El ícono no viaja en la respuesta (puede ser grande); solo se indica
// si hay uno cargado.
type SettingsResponse struct {
	CompanyName       string          `json:"company_name"`
	CompanyAddress    string          `json:"company_address"`
	HasCompanyIcon    bool            `json:"has_company_icon"`
	DeadlineDays      int             `json:"deadline_days"`
	DefaultHourlyRate decimal.Decimal `json:"default_hourly_rate"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
	FooterText        string          `json:"footer_text"`
	InvoicePrefix     string          `json:"invoice_prefix"`
	InvoiceNumber     int64           `json:"invoice_number"`
	OutputPDFPath     string          `json:"output_pdf_path"`
	Currency          string          `json:"currency"`
	Theme             string          `json:"theme"`
	DateFormat        string          `json:"date_format"`
}

// UpdateSettingsRequest body para PATCH /api/settings. Los campos ausentes
// (nil) no se tocan: fusión superficial.
type UpdateSettingsRequest struct {
	CompanyName       *string          `json:"company_name"`
	CompanyAddress    *string          `json:"company_address"`
	DeadlineDays      *int             `json:"deadline_days"`
	DefaultHourlyRate *decimal.Decimal `json:"default_hourly_rate"`
	BankName          *string          `json:"bank_name"`
	BankAccountNumber *string          `json:"bank_account_number"`
	FooterText        *string          `json:"footer_text"`
	InvoicePrefix     *string          `json:"invoice_prefix"`
	InvoiceNumber     *int64           `json:"invoice_number"`
	OutputPDFPath     *string          `json:"output_pdf_path"`
	Currency          *string          `json:"currency"`
	Theme             *string          `json:"theme"`
	DateFormat        *string          `json:"date_format"`
}

// UploadIconRequest body para POST /api/settings/icon.
type UploadIconRequest struct {
	Icon string `json:"icon"` // imagen en base64
}

// UpdateInvoiceFieldRequest body para PUT /api/invoice/fields/:field.
type UpdateInvoiceFieldRequest struct {
	Value string `json:"value"`
}

// UpdateInvoiceItemRequest body para PUT /api/invoice/items/:index.
type UpdateInvoiceItemRequest struct {
	Field string `json:"field"` // description, date, hours, rate
	Value string `json:"value"`
}

// DraftInputRequest body para POST /api/invoice/dates/:field (pulsación).
type DraftInputRequest struct {
	Text  string `json:"text"`
	Index *int   `json:"index"` // solo para field == "item"
}

// InvoiceItemResponse línea con su total derivado.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
}

// CurrentInvoiceResponse la factura en curso con totales para GET /api/invoice.
type CurrentInvoiceResponse struct {
	Number      string                `json:"number"` // próximo número: prefijo-consecutivo
	Customer    string                `json:"customer"`
	InvoiceDate string                `json:"invoice_date"`
	DueDate     string                `json:"due_date"`
	Items       []InvoiceItemResponse `json:"items"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
	Total       decimal.Decimal       `json:"total"`
}

// DraftTextsResponse textos en staging de los campos de fecha.
type DraftTextsResponse struct {
	InvoiceDate string         `json:"invoice_date"`
	DueDate     string         `json:"due_date"`
	Items       map[int]string `json:"items"`
}

// ThemeResponse tema configurado y tema efectivo resuelto.
type ThemeResponse struct {
	Setting  string `json:"setting"`
	Resolved string `json:"resolved"`
}
