package invoicing

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// InvoiceUseCase operaciones sobre la factura en curso. Valida las
// precondiciones que el reducer no comprueba (índice en rango, referencias
// que resuelven, fechas en forma canónica) antes de despachar.
type InvoiceUseCase struct {
	store *Store
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(store *Store) *InvoiceUseCase {
	return &InvoiceUseCase{store: store}
}

// Current la foto comiteada completa.
func (uc *InvoiceUseCase) Current() entity.State {
	return uc.store.Snapshot()
}

// Totals totales derivados de la factura en curso (no requiere cliente).
func (uc *InvoiceUseCase) Totals() ([]LineForPDF, decimal.Decimal) {
	st := uc.store.Snapshot()
	lines := lo.Map(st.CurrentInvoice.Items, func(item entity.LineItem, _ int) LineForPDF {
		return LineForPDF{LineItem: item, Total: item.Total()}
	})
	subtotal := lo.Reduce(lines, func(acc decimal.Decimal, l LineForPDF, _ int) decimal.Decimal {
		return acc.Add(l.Total)
	}, decimal.Zero)
	return lines, subtotal
}

// SetField reemplaza un campo nombrado de la factura. Para customer el
// valor debe referenciar un cliente existente ("" lo deselecciona); para
// las fechas debe ser ISO canónico o "" (el texto libre del usuario entra
// por el DraftBuffer, no por acá).
func (uc *InvoiceUseCase) SetField(field InvoiceField, value string) error {
	if !field.Valid() {
		return fmt.Errorf("%w: campo %q no direccionable", domain.ErrInvalidInput, field)
	}

	switch field {
	case FieldCustomer:
		if value != "" {
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: referencia de cliente %q", domain.ErrInvalidInput, value)
			}
			st := uc.store.Snapshot()
			if _, found := lo.Find(st.Customers, func(c entity.Customer) bool { return c.ID == id }); !found {
				return domain.ErrNotFound
			}
		}
	case FieldInvoiceDate, FieldDueDate:
		if value != "" {
			if _, err := dates.FromISO(value); err != nil {
				return fmt.Errorf("%w: %q no es una fecha ISO", domain.ErrInvalidInput, value)
			}
		}
	}

	uc.store.Dispatch(UpdateInvoiceField{Field: field, Value: value})
	return nil
}

// UpdateItem reemplaza un campo de la línea index. El índice se valida acá:
// para el reducer es precondición.
func (uc *InvoiceUseCase) UpdateItem(index int, field ItemField, value string) error {
	if !field.Valid() {
		return fmt.Errorf("%w: campo de línea %q no direccionable", domain.ErrInvalidInput, field)
	}
	st := uc.store.Snapshot()
	if index < 0 || index >= len(st.CurrentInvoice.Items) {
		return domain.ErrIndexOutOfRange
	}
	if field == ItemDate && value != "" {
		if _, err := dates.FromISO(value); err != nil {
			return fmt.Errorf("%w: %q no es una fecha ISO", domain.ErrInvalidInput, value)
		}
	}
	uc.store.Dispatch(UpdateInvoiceItem{Index: index, Field: field, Value: value})
	return nil
}

// AddItem agrega una línea con los valores por defecto.
func (uc *InvoiceUseCase) AddItem() {
	uc.store.Dispatch(AddInvoiceItem{})
}

// RemoveItem elimina la línea index conservando el orden del resto.
// La factura nunca baja de una línea.
func (uc *InvoiceUseCase) RemoveItem(index int) error {
	st := uc.store.Snapshot()
	if index < 0 || index >= len(st.CurrentInvoice.Items) {
		return domain.ErrIndexOutOfRange
	}
	if len(st.CurrentInvoice.Items) == 1 {
		return domain.ErrLastItem
	}
	uc.store.Dispatch(RemoveInvoiceItem{Index: index})
	return nil
}
