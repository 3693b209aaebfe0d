package invoicing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
)

// bufferDePrueba armado real: recalculo primero, buffer después, de modo
// que el buffer siempre resincroniza contra el vencimiento ya derivado.
func bufferDePrueba() (*invoicing.Store, *invoicing.DraftBuffer) {
	s := storeDePrueba()
	s.Subscribe(invoicing.DueDateRecalc{})
	b := invoicing.NewDraftBuffer(s)
	s.Subscribe(b)
	return s, b
}

func TestDraft_ArrancaSincronizado(t *testing.T) {
	_, b := bufferDePrueba()

	textos := b.Texts()
	assert.Equal(t, "2024/05/15", textos.InvoiceDate, "el buffer muestra el valor comiteado formateado")
	assert.Equal(t, "2024/05/25", textos.DueDate)
	require.Len(t, textos.Items, 1)
	assert.Equal(t, "2024/05/15", textos.Items[0])
}

func TestDraft_PulsacionValidaComiteaDeInmediato(t *testing.T) {
	s, b := bufferDePrueba()

	b.TypeField(invoicing.FieldInvoiceDate, "2024/01/25")

	st := s.Snapshot()
	assert.Equal(t, "2024-01-25", st.CurrentInvoice.InvoiceDate)
	assert.Equal(t, "2024-02-04", st.CurrentInvoice.DueDate, "el recalculo corre en el mismo dispatch")

	textos := b.Texts()
	assert.Equal(t, "2024/01/25", textos.InvoiceDate)
	assert.Equal(t, "2024/02/04", textos.DueDate, "el buffer del vencimiento se resincroniza solo")
}

func TestDraft_PulsacionParcialNoComitea(t *testing.T) {
	s, b := bufferDePrueba()

	b.TypeField(invoicing.FieldInvoiceDate, "2024/0")

	assert.Equal(t, hoy, s.Snapshot().CurrentInvoice.InvoiceDate,
		"texto a medio escribir no debe tocar el valor comiteado")
	assert.Equal(t, "2024/0", b.Texts().InvoiceDate, "el texto parcial queda visible mientras se escribe")
}

func TestDraft_BlurRevierteTextoInvalido(t *testing.T) {
	s, b := bufferDePrueba()

	b.TypeField(invoicing.FieldInvoiceDate, "2024/99/99")
	b.BlurField(invoicing.FieldInvoiceDate)

	assert.Equal(t, hoy, s.Snapshot().CurrentInvoice.InvoiceDate)
	assert.Equal(t, "2024/05/15", b.Texts().InvoiceDate,
		"después del blur nunca queda texto imparseable visible")
}

func TestDraft_BlurConTextoValidoComitea(t *testing.T) {
	s, b := bufferDePrueba()

	b.TypeField(invoicing.FieldDueDate, "2024/12/31")
	b.BlurField(invoicing.FieldDueDate)

	assert.Equal(t, "2024-12-31", s.Snapshot().CurrentInvoice.DueDate)
	assert.Equal(t, "2024/12/31", b.Texts().DueDate)
}

func TestDraft_VacioLimpiaElCampo(t *testing.T) {
	s, b := bufferDePrueba()

	b.TypeField(invoicing.FieldInvoiceDate, "")

	st := s.Snapshot()
	assert.Equal(t, "", st.CurrentInvoice.InvoiceDate, "borrar todo el texto limpia el campo")
	assert.Equal(t, "", st.CurrentInvoice.DueDate, "sin fecha de factura el vencimiento también se limpia")
}

func TestDraft_FechaDeLinea(t *testing.T) {
	s, b := bufferDePrueba()

	require.NoError(t, b.TypeItemDate(0, "2024/03/0"))
	assert.Equal(t, hoy, s.Snapshot().CurrentInvoice.Items[0].Date)

	require.NoError(t, b.TypeItemDate(0, "2024/03/02"))
	assert.Equal(t, "2024-03-02", s.Snapshot().CurrentInvoice.Items[0].Date)

	require.NoError(t, b.TypeItemDate(0, "2024/03/xx"))
	require.NoError(t, b.BlurItemDate(0))
	assert.Equal(t, "2024-03-02", s.Snapshot().CurrentInvoice.Items[0].Date)
	assert.Equal(t, "2024/03/02", b.Texts().Items[0], "el blur revierte al último valor comiteado")
}

// Un índice fuera de rango se rechaza antes de bufferear o despachar: la
// precondición del reducer nunca se viola desde la ruta de borradores.
func TestDraft_IndiceDeLineaFueraDeRango(t *testing.T) {
	s, b := bufferDePrueba()
	require.Len(t, s.Snapshot().CurrentInvoice.Items, 1)

	err := b.TypeItemDate(7, "2024/05/20")
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.TypeItemDate(-1, "2024/05/20"), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.BlurItemDate(7), domain.ErrIndexOutOfRange)

	assert.Equal(t, hoy, s.Snapshot().CurrentInvoice.Items[0].Date, "el estado queda intacto")
	assert.NotContains(t, b.Texts().Items, 7, "el buffer no acumula claves fuera de rango")
}

func TestDraft_CambioDeFormatoResincronizaTodo(t *testing.T) {
	s, b := bufferDePrueba()
	formato := string(dates.FormatDMY)

	s.Dispatch(invoicing.SetSettings{Patch: invoicing.SettingsPatch{DateFormat: &formato}})

	textos := b.Texts()
	assert.Equal(t, "15/05/2024", textos.InvoiceDate, "todos los textos se re-renderizan en el formato nuevo")
	assert.Equal(t, "25/05/2024", textos.DueDate)
	assert.Equal(t, "15/05/2024", textos.Items[0])
}

func TestDraft_LineaEliminadaSaleDelBuffer(t *testing.T) {
	s, b := bufferDePrueba()
	s.Dispatch(invoicing.AddInvoiceItem{})
	require.Len(t, b.Texts().Items, 2)

	s.Dispatch(invoicing.RemoveInvoiceItem{Index: 1})

	textos := b.Texts()
	assert.Len(t, textos.Items, 1, "los índices que quedaron fuera de rango se descartan")
	assert.Contains(t, textos.Items, 0)
}
