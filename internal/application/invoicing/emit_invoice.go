package invoicing

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

// EmitInvoiceUseCase produce el documento final a partir de la foto
// comiteada de la factura: resuelve el cliente, llama al generador PDF y,
// solo si la generación salió bien, incrementa el consecutivo y reinicia
// la factura en curso (exactamente una vez por emisión exitosa).
type EmitInvoiceUseCase struct {
	store     *Store
	generator InvoicePDFGenerator
	emitting  atomic.Bool
	log       *logger.Logger
}

// NewEmitInvoiceUseCase construye el caso de uso.
func NewEmitInvoiceUseCase(store *Store, generator InvoicePDFGenerator, log *logger.Logger) *EmitInvoiceUseCase {
	return &EmitInvoiceUseCase{
		store:     store,
		generator: generator,
		log:       log.WithComponent("emission"),
	}
}

// BuildSnapshot arma la foto para el renderer resolviendo la referencia
// al cliente. Retorna domain.ErrNoCustomerSelected si no hay cliente
// seleccionado o la referencia no resuelve: el cliente es obligatorio.
func (uc *EmitInvoiceUseCase) BuildSnapshot() (*Snapshot, error) {
	st := uc.store.Snapshot()

	id, err := strconv.ParseInt(st.CurrentInvoice.Customer, 10, 64)
	if st.CurrentInvoice.Customer == "" || err != nil {
		return nil, domain.ErrNoCustomerSelected
	}
	customer, found := lo.Find(st.Customers, func(c entity.Customer) bool { return c.ID == id })
	if !found {
		return nil, domain.ErrNoCustomerSelected
	}

	lines := lo.Map(st.CurrentInvoice.Items, func(item entity.LineItem, _ int) LineForPDF {
		return LineForPDF{LineItem: item, Total: item.Total()}
	})
	subtotal := lo.Reduce(lines, func(acc decimal.Decimal, l LineForPDF, _ int) decimal.Decimal {
		return acc.Add(l.Total)
	}, decimal.Zero)

	return &Snapshot{
		Settings: st.Settings,
		Invoice:  st.CurrentInvoice,
		Customer: customer,
		Number:   fmt.Sprintf("%s-%d", st.Settings.InvoicePrefix, st.Settings.InvoiceNumber),
		Lines:    lines,
		Subtotal: subtotal,
	}, nil
}

// Emit genera el PDF y devuelve (bytes, nombre de archivo).
//
// Cualquier fallo antes o durante la generación deja el estado intacto:
// ni incremento de consecutivo ni reinicio. Una segunda emisión mientras
// hay una en vuelo se rechaza con domain.ErrEmissionInProgress; la espera
// del generador es el único punto de suspensión del sistema y durante
// ella el store no se muta desde aquí.
func (uc *EmitInvoiceUseCase) Emit(ctx context.Context) ([]byte, string, error) {
	if !uc.emitting.CompareAndSwap(false, true) {
		return nil, "", domain.ErrEmissionInProgress
	}
	defer uc.emitting.Store(false)

	snap, err := uc.BuildSnapshot()
	if err != nil {
		return nil, "", err
	}

	pdf, err := uc.generator.GenerateInvoicePDF(ctx, snap)
	if err != nil {
		return nil, "", fmt.Errorf("emisión: generación fallida: %w", err)
	}

	uc.store.Dispatch(IncrementInvoiceNumber{})
	uc.store.Dispatch(ResetInvoice{})

	filename := fmt.Sprintf("invoice-%s.pdf", snap.Number)
	uc.log.Info().
		Str("invoice", snap.Number).
		Str("customer", snap.Customer.Name).
		Int("lines", len(snap.Lines)).
		Str("subtotal", snap.Subtotal.StringFixed(2)).
		Msg("factura emitida")
	return pdf, filename, nil
}
