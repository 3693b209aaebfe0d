package invoicing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// Action transición del store. Es un tipo suma cerrado: el método marcador
// no exportado impide implementaciones fuera de este paquete, y el switch
// del reducer enumera exactamente estas variantes.
type Action interface {
	isAction()
}

// InvoiceField campo de CurrentInvoice direccionable por UpdateInvoiceField.
type InvoiceField string

const (
	FieldCustomer    InvoiceField = "customer"
	FieldInvoiceDate InvoiceField = "invoiceDate"
	FieldDueDate     InvoiceField = "dueDate"
)

// Valid indica si el campo es uno de los direccionables.
func (f InvoiceField) Valid() bool {
	return f == FieldCustomer || f == FieldInvoiceDate || f == FieldDueDate
}

// ItemField campo de una línea direccionable por UpdateInvoiceItem.
type ItemField string

const (
	ItemDescription ItemField = "description"
	ItemDate        ItemField = "date"
	ItemHours       ItemField = "hours"
	ItemRate        ItemField = "rate"
)

// Valid indica si el campo es uno de los direccionables.
func (f ItemField) Valid() bool {
	return f == ItemDescription || f == ItemDate || f == ItemHours || f == ItemRate
}

// SettingsPatch campos a fusionar sobre Settings. Los punteros en nil no
// tocan el campo correspondiente; un patch totalmente vacío es un no-op.
type SettingsPatch struct {
	CompanyName       *string
	CompanyAddress    *string
	CompanyIcon       *string
	DeadlineDays      *int
	DefaultHourlyRate *decimal.Decimal
	BankName          *string
	BankAccountNumber *string
	FooterText        *string
	InvoicePrefix     *string
	InvoiceNumber     *int64
	OutputPDFPath     *string
	Currency          *string
	Theme             *string
	DateFormat        *string
}

// SetCustomers reemplaza la lista de clientes completa.
type SetCustomers struct {
	Customers []entity.Customer
}

// AddCustomer agrega un cliente al final. El ID lo asigna el caller
// (máximo existente + 1) y debe ser único.
type AddCustomer struct {
	Customer entity.Customer
}

// SetSettings fusiona los campos presentes del patch sobre Settings.
type SetSettings struct {
	Patch SettingsPatch
}

// UpdateInvoiceField reemplaza un campo nombrado de CurrentInvoice.
// Para customer el valor es el ID del cliente en texto ("" = ninguno);
// para las fechas, la forma canónica ISO ("" = sin fecha).
type UpdateInvoiceField struct {
	Field InvoiceField
	Value string
}

// UpdateInvoiceItem reemplaza un campo de la línea en Index. El índice en
// rango es precondición del caller. Para hours y rate el texto que no
// parsea como número se coerciona silenciosamente a 0.
type UpdateInvoiceItem struct {
	Index int
	Field ItemField
	Value string
}

// AddInvoiceItem agrega una línea nueva: descripción vacía, fecha de hoy,
// 1 hora, tarifa = Settings.DefaultHourlyRate.
type AddInvoiceItem struct{}

// RemoveInvoiceItem elimina la línea en Index conservando el orden del
// resto (corrimiento estable de índices, sin reordenar).
type RemoveInvoiceItem struct {
	Index int
}

// IncrementInvoiceNumber suma 1 al consecutivo de facturas.
type IncrementInvoiceNumber struct{}

// ResetInvoice reemplaza CurrentInvoice por el valor fresco por defecto:
// fecha de hoy, vencimiento recalculado, una sola línea por defecto y
// sin cliente seleccionado.
type ResetInvoice struct{}

func (SetCustomers) isAction()           {}
func (AddCustomer) isAction()            {}
func (SetSettings) isAction()            {}
func (UpdateInvoiceField) isAction()     {}
func (UpdateInvoiceItem) isAction()      {}
func (AddInvoiceItem) isAction()         {}
func (RemoveInvoiceItem) isAction()      {}
func (IncrementInvoiceNumber) isAction() {}
func (ResetInvoice) isAction()           {}
