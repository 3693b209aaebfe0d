package invoicing

import (
	"sync"

	"github.com/samber/lo"

	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// DraftBuffer staging de texto libre por campo de fecha (fecha de factura,
// vencimiento y la fecha de cada línea), desacoplado del valor ISO
// comiteado: el usuario puede tener escrito un texto parcial o inválido
// sin corromper el estado del store.
//
// En cada pulsación el buffer se actualiza incondicionalmente y se intenta
// parsear; si el parse produce un valor, se comitea de inmediato. Al perder
// el foco, si el texto sigue sin parsear se descarta y el buffer vuelve a
// la forma visible del valor comiteado (nunca queda texto imparseable
// visible después del blur).
//
// Como subscriber del store, el buffer se resincroniza vía FormatISO cada
// vez que el valor comiteado o el formato activo cambian por fuera (por
// ejemplo el recalculo automático del vencimiento).
type DraftBuffer struct {
	mu          sync.Mutex
	store       *Store
	invoiceDate string
	dueDate     string
	items       map[int]string
}

// NewDraftBuffer crea el buffer sincronizado con el estado actual del
// store. El caller debe registrarlo con store.Subscribe.
func NewDraftBuffer(store *Store) *DraftBuffer {
	b := &DraftBuffer{store: store, items: make(map[int]string)}
	b.mu.Lock()
	b.resyncAll(store.Snapshot())
	b.mu.Unlock()
	return b
}

func (b *DraftBuffer) Name() string { return "draft-resync" }

// AfterTransition resincroniza los campos cuyo valor comiteado cambió, y
// todos si cambió el formato activo. Nunca devuelve acciones.
func (b *DraftBuffer) AfterTransition(old, next entity.State) []Action {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := dates.Format(next.Settings.DateFormat)
	if old.Settings.DateFormat != next.Settings.DateFormat {
		b.resyncAll(next)
		return nil
	}
	if old.CurrentInvoice.InvoiceDate != next.CurrentInvoice.InvoiceDate {
		b.invoiceDate = dates.FormatISO(next.CurrentInvoice.InvoiceDate, f)
	}
	if old.CurrentInvoice.DueDate != next.CurrentInvoice.DueDate {
		b.dueDate = dates.FormatISO(next.CurrentInvoice.DueDate, f)
	}
	for i, item := range next.CurrentInvoice.Items {
		if i >= len(old.CurrentInvoice.Items) || old.CurrentInvoice.Items[i].Date != item.Date {
			b.items[i] = dates.FormatISO(item.Date, f)
		}
	}
	for i := range b.items {
		if i >= len(next.CurrentInvoice.Items) {
			delete(b.items, i)
		}
	}
	return nil
}

// TypeField pulsación sobre invoiceDate o dueDate: el buffer toma el texto
// tal cual y, si parsea, el valor ISO se comitea de inmediato.
func (b *DraftBuffer) TypeField(field InvoiceField, text string) {
	st := b.store.Snapshot()

	b.mu.Lock()
	b.setField(field, text)
	b.mu.Unlock()

	if iso, ok := dates.Parse(text, dates.Format(st.Settings.DateFormat)); ok {
		b.store.Dispatch(UpdateInvoiceField{Field: field, Value: iso})
	}
}

// BlurField pérdida de foco sobre invoiceDate o dueDate: reintenta el
// parse; si sigue fallando, revierte el buffer al valor comiteado.
func (b *DraftBuffer) BlurField(field InvoiceField) {
	st := b.store.Snapshot()
	f := dates.Format(st.Settings.DateFormat)

	b.mu.Lock()
	text := b.fieldText(field)
	b.mu.Unlock()

	if iso, ok := dates.Parse(text, f); ok {
		b.store.Dispatch(UpdateInvoiceField{Field: field, Value: iso})
		return
	}

	committed := st.CurrentInvoice.InvoiceDate
	if field == FieldDueDate {
		committed = st.CurrentInvoice.DueDate
	}
	b.mu.Lock()
	b.setField(field, dates.FormatISO(committed, f))
	b.mu.Unlock()
}

// TypeItemDate pulsación sobre la fecha de la línea index. El índice debe
// estar en rango: para el reducer es precondición, así que se valida acá
// antes de bufferear o despachar.
func (b *DraftBuffer) TypeItemDate(index int, text string) error {
	st := b.store.Snapshot()
	if index < 0 || index >= len(st.CurrentInvoice.Items) {
		return domain.ErrIndexOutOfRange
	}

	b.mu.Lock()
	b.items[index] = text
	b.mu.Unlock()

	if iso, ok := dates.Parse(text, dates.Format(st.Settings.DateFormat)); ok {
		b.store.Dispatch(UpdateInvoiceItem{Index: index, Field: ItemDate, Value: iso})
	}
	return nil
}

// BlurItemDate pérdida de foco sobre la fecha de la línea index.
func (b *DraftBuffer) BlurItemDate(index int) error {
	st := b.store.Snapshot()
	if index < 0 || index >= len(st.CurrentInvoice.Items) {
		return domain.ErrIndexOutOfRange
	}
	f := dates.Format(st.Settings.DateFormat)

	b.mu.Lock()
	text := b.items[index]
	b.mu.Unlock()

	if iso, ok := dates.Parse(text, f); ok {
		b.store.Dispatch(UpdateInvoiceItem{Index: index, Field: ItemDate, Value: iso})
		return nil
	}

	b.mu.Lock()
	b.items[index] = dates.FormatISO(st.CurrentInvoice.Items[index].Date, f)
	b.mu.Unlock()
	return nil
}

// Texts foto de los textos en staging (para la API y los tests).
type Texts struct {
	InvoiceDate string
	DueDate     string
	Items       map[int]string
}

// Texts devuelve el contenido actual del buffer.
func (b *DraftBuffer) Texts() Texts {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Texts{
		InvoiceDate: b.invoiceDate,
		DueDate:     b.dueDate,
		Items:       lo.Assign(map[int]string{}, b.items),
	}
}

// setField y fieldText requieren b.mu tomado.
func (b *DraftBuffer) setField(field InvoiceField, text string) {
	if field == FieldDueDate {
		b.dueDate = text
		return
	}
	b.invoiceDate = text
}

func (b *DraftBuffer) fieldText(field InvoiceField) string {
	if field == FieldDueDate {
		return b.dueDate
	}
	return b.invoiceDate
}

// resyncAll requiere b.mu tomado.
func (b *DraftBuffer) resyncAll(st entity.State) {
	f := dates.Format(st.Settings.DateFormat)
	b.invoiceDate = dates.FormatISO(st.CurrentInvoice.InvoiceDate, f)
	b.dueDate = dates.FormatISO(st.CurrentInvoice.DueDate, f)
	b.items = make(map[int]string, len(st.CurrentInvoice.Items))
	for i, item := range st.CurrentInvoice.Items {
		b.items[i] = dates.FormatISO(item.Date, f)
	}
}
