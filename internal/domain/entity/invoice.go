package entity

import "github.com/shopspring/decimal"

// LineItem una línea de la factura en curso. El orden dentro de la
// secuencia es significativo (orden de filas en pantalla y en el PDF).
type LineItem struct {
	Description string
	Date        string // fecha ISO YYYY-MM-DD
	Hours       decimal.Decimal
	Rate        decimal.Decimal
}

// Total importe de la línea (horas * tarifa).
func (li LineItem) Total() decimal.Decimal {
	return li.Hours.Mul(li.Rate)
}

// CurrentInvoice la factura en construcción. Customer es una referencia
// no-propietaria al ID del cliente en formato texto ("" = sin seleccionar);
// se resuelve contra la lista de clientes al momento de emitir.
type CurrentInvoice struct {
	Customer    string
	InvoiceDate string // fecha ISO
	DueDate     string // fecha ISO; derivada de InvoiceDate + DeadlineDays, pero editable
	Items       []LineItem
}

// Clone copia profunda (la secuencia de líneas se duplica).
func (ci CurrentInvoice) Clone() CurrentInvoice {
	out := ci
	out.Items = make([]LineItem, len(ci.Items))
	copy(out.Items, ci.Items)
	return out
}

// State el estado completo mantenido por el store: clientes, configuración
// y la factura en curso. Siempre hay al menos una línea en Items.
type State struct {
	Customers      []Customer
	Settings       Settings
	CurrentInvoice CurrentInvoice
}

// Clone copia profunda del estado (las transiciones del reducer nunca
// mutan el estado anterior).
func (s State) Clone() State {
	out := s
	out.Customers = make([]Customer, len(s.Customers))
	copy(out.Customers, s.Customers)
	out.CurrentInvoice = s.CurrentInvoice.Clone()
	return out
}
