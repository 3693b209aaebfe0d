package invoicing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

// generadorFalso captura la foto recibida y devuelve bytes fijos o el error
// configurado, sin tocar maroto.
type generadorFalso struct {
	foto     *invoicing.Snapshot
	llamadas int
	err      error
}

func (g *generadorFalso) GenerateInvoicePDF(_ context.Context, snap *invoicing.Snapshot) ([]byte, error) {
	g.llamadas++
	g.foto = snap
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-falso"), nil
}

// generadorBloqueante se queda esperando hasta que el test lo libere, para
// provocar una emisión en vuelo.
type generadorBloqueante struct {
	arranco chan struct{}
	liberar chan struct{}
}

func (g *generadorBloqueante) GenerateInvoicePDF(_ context.Context, _ *invoicing.Snapshot) ([]byte, error) {
	close(g.arranco)
	<-g.liberar
	return []byte("%PDF-falso"), nil
}

func logDePrueba() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func emisionDePrueba(gen invoicing.InvoicePDFGenerator) (*invoicing.Store, *invoicing.EmitInvoiceUseCase) {
	s := storeConRecalc()
	return s, invoicing.NewEmitInvoiceUseCase(s, gen, logDePrueba())
}

func TestEmit_SinClienteAbortaAntesDeGenerar(t *testing.T) {
	gen := &generadorFalso{}
	s, uc := emisionDePrueba(gen)
	antes := s.Snapshot()

	_, _, err := uc.Emit(context.Background())

	require.ErrorIs(t, err, domain.ErrNoCustomerSelected)
	assert.Equal(t, 0, gen.llamadas, "el generador no debe llamarse sin cliente")
	assert.Equal(t, antes, s.Snapshot(), "una emisión abortada deja el estado intacto")
}

func TestEmit_ClienteQueNoResuelveAborta(t *testing.T) {
	gen := &generadorFalso{}
	s, uc := emisionDePrueba(gen)
	s.Dispatch(invoicing.UpdateInvoiceField{Field: invoicing.FieldCustomer, Value: "99"})

	_, _, err := uc.Emit(context.Background())

	require.ErrorIs(t, err, domain.ErrNoCustomerSelected,
		"una referencia colgante equivale a no tener cliente")
	assert.Equal(t, 0, gen.llamadas)
}

func TestEmit_ExitoIncrementaYReinicia(t *testing.T) {
	gen := &generadorFalso{}
	s, uc := emisionDePrueba(gen)
	clientes := invoicing.NewCustomerUseCase(s)
	_, err := clientes.Create("Prueba SRL", "Av. Siempre Viva 742")
	require.NoError(t, err)
	s.Dispatch(invoicing.UpdateInvoiceItem{Index: 0, Field: invoicing.ItemHours, Value: "2"})

	pdf, nombre, err := uc.Emit(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "invoice-INV-1.pdf", nombre)

	require.NotNil(t, gen.foto)
	assert.Equal(t, "INV-1", gen.foto.Number)
	assert.Equal(t, "Prueba SRL", gen.foto.Customer.Name)
	assert.Equal(t, "100.00", gen.foto.Subtotal.StringFixed(2), "2 horas a 50")

	st := s.Snapshot()
	assert.Equal(t, int64(2), st.Settings.InvoiceNumber, "el consecutivo avanza exactamente una vez")
	assert.Equal(t, "", st.CurrentInvoice.Customer, "la factura en curso se reinicia")
	require.Len(t, st.CurrentInvoice.Items, 1)
	assert.True(t, st.CurrentInvoice.Items[0].Hours.Equal(decimal.NewFromInt(1)))
}

func TestEmit_FalloDelGeneradorDejaEstadoIntacto(t *testing.T) {
	gen := &generadorFalso{err: errors.New("sin espacio en disco")}
	s, uc := emisionDePrueba(gen)
	clientes := invoicing.NewCustomerUseCase(s)
	_, err := clientes.Create("Prueba SRL", "Av. Siempre Viva 742")
	require.NoError(t, err)
	antes := s.Snapshot()

	_, _, err = uc.Emit(context.Background())

	require.Error(t, err)
	assert.Equal(t, antes, s.Snapshot(),
		"si la generación falla no hay incremento ni reinicio")
}

func TestEmit_RechazaEmisionConcurrente(t *testing.T) {
	gen := &generadorBloqueante{arranco: make(chan struct{}), liberar: make(chan struct{})}
	s, uc := emisionDePrueba(gen)
	clientes := invoicing.NewCustomerUseCase(s)
	_, err := clientes.Create("Prueba SRL", "Av. Siempre Viva 742")
	require.NoError(t, err)

	hecho := make(chan error, 1)
	go func() {
		_, _, err := uc.Emit(context.Background())
		hecho <- err
	}()

	select {
	case <-gen.arranco:
	case <-time.After(time.Second):
		t.Fatal("la primera emisión nunca llegó al generador")
	}

	_, _, err = uc.Emit(context.Background())
	require.ErrorIs(t, err, domain.ErrEmissionInProgress,
		"una segunda emisión mientras hay una en vuelo se rechaza")

	close(gen.liberar)
	require.NoError(t, <-hecho, "la primera emisión debe terminar bien")
	assert.Equal(t, int64(2), s.Snapshot().Settings.InvoiceNumber)
}

// El recorrido completo del formulario: alta de cliente con autoselección,
// tres líneas con importes distintos, subtotal a dos decimales y emisión.
func TestEmision_RecorridoCompleto(t *testing.T) {
	gen := &generadorFalso{}
	s, uc := emisionDePrueba(gen)
	clientes := invoicing.NewCustomerUseCase(s)
	factura := invoicing.NewInvoiceUseCase(s)

	creado, err := clientes.Create("Prueba SRL", "Av. Siempre Viva 742")
	require.NoError(t, err)
	assert.Equal(t, "1", s.Snapshot().CurrentInvoice.Customer,
		"el cliente recién creado queda seleccionado")
	assert.Equal(t, int64(1), creado.ID)

	factura.AddItem()
	factura.AddItem()
	require.NoError(t, factura.UpdateItem(0, invoicing.ItemHours, "2"))
	require.NoError(t, factura.UpdateItem(1, invoicing.ItemHours, "1.5"))
	require.NoError(t, factura.UpdateItem(1, invoicing.ItemRate, "80"))
	require.NoError(t, factura.UpdateItem(2, invoicing.ItemHours, "0.25"))
	require.NoError(t, factura.UpdateItem(2, invoicing.ItemRate, "100"))

	_, subtotal := factura.Totals()
	assert.Equal(t, "245.00", subtotal.StringFixed(2), "100 + 120 + 25")

	pdf, nombre, err := uc.Emit(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "invoice-INV-1.pdf", nombre)
	require.Len(t, gen.foto.Lines, 3)
	assert.Equal(t, "245.00", gen.foto.Subtotal.StringFixed(2))

	st := s.Snapshot()
	assert.Equal(t, int64(2), st.Settings.InvoiceNumber)
	require.Len(t, st.CurrentInvoice.Items, 1)
}
