package dates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
)

// ──────────────────────────────────────────────────────────────────────────────
// La propiedad central de todo el subsistema de fechas es la ida y vuelta:
// Parse(FormatISO(d, f), f) == d para toda fecha ISO válida y ambos formatos.
// Si alguien toca el códec y rompe esta ley, el dato comiteado y el texto en
// pantalla dejan de coincidir y los campos de fecha empiezan a "saltar".
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_FormatISO_IdaYVuelta(t *testing.T) {
	fechas := []string{
		"2024-01-01",
		"2024-01-25",
		"2024-02-29", // bisiesto
		"2023-02-28",
		"2024-06-30",
		"2024-12-31",
		"1000-01-01",
		"9999-12-31",
	}
	for _, f := range []dates.Format{dates.FormatYMD, dates.FormatDMY} {
		for _, iso := range fechas {
			texto := dates.FormatISO(iso, f)
			vuelta, ok := dates.Parse(texto, f)
			require.True(t, ok, "Parse(%q, %s) no debe rechazar una fecha formateada por nosotros", texto, f)
			assert.Equal(t, iso, vuelta, "la ida y vuelta debe devolver la fecha original")
		}
	}
}

func TestFormatISO_AmbosFormatos(t *testing.T) {
	assert.Equal(t, "2024/01/25", dates.FormatISO("2024-01-25", dates.FormatYMD))
	assert.Equal(t, "25/01/2024", dates.FormatISO("2024-01-25", dates.FormatDMY))
}

// FormatISO nunca falla: entrada vacía o no-ISO se devuelve sin cambios,
// porque el caller puede estar re-mostrando texto a medio escribir.
func TestFormatISO_EntradaInvalidaSeDevuelveIgual(t *testing.T) {
	assert.Equal(t, "", dates.FormatISO("", dates.FormatYMD))
	assert.Equal(t, "25/01", dates.FormatISO("25/01", dates.FormatYMD))
	assert.Equal(t, "no-es-fecha", dates.FormatISO("no-es-fecha", dates.FormatDMY))
	assert.Equal(t, "2024-13-01", dates.FormatISO("2024-13-01", dates.FormatYMD))
}

func TestParse_SeparadorAutodetectado(t *testing.T) {
	// El separador lo dicta el texto, no el formato: con barras o con guiones
	// parsea igual mientras las posiciones coincidan con el formato.
	iso, ok := dates.Parse("2024/01/25", dates.FormatYMD)
	require.True(t, ok)
	assert.Equal(t, "2024-01-25", iso)

	iso, ok = dates.Parse("2024-01-25", dates.FormatYMD)
	require.True(t, ok)
	assert.Equal(t, "2024-01-25", iso)

	iso, ok = dates.Parse("25-01-2024", dates.FormatDMY)
	require.True(t, ok)
	assert.Equal(t, "2024-01-25", iso)
}

func TestParse_VacioEsCentinelaDeLimpiar(t *testing.T) {
	// "" y solo-espacios parsean a cadena vacía con ok == true: es el valor
	// válido de "limpiar el campo", distinto de un rechazo.
	for _, f := range []dates.Format{dates.FormatYMD, dates.FormatDMY} {
		iso, ok := dates.Parse("", f)
		require.True(t, ok)
		assert.Equal(t, "", iso)

		iso, ok = dates.Parse("   ", f)
		require.True(t, ok)
		assert.Equal(t, "", iso)
	}
}

func TestParse_Rechazos(t *testing.T) {
	casos := []struct {
		texto  string
		format dates.Format
		motivo string
	}{
		{"2023/02/30", dates.FormatYMD, "30 de febrero no existe"},
		{"13/40/2023", dates.FormatDMY, "mes 40 fuera de rango"},
		{"2023/04/31", dates.FormatYMD, "abril tiene 30 días"},
		{"2023/13/01", dates.FormatYMD, "mes 13 fuera de rango"},
		{"2023/00/10", dates.FormatYMD, "mes 0 fuera de rango"},
		{"2023/01/00", dates.FormatYMD, "día 0 fuera de rango"},
		{"2023/01/32", dates.FormatYMD, "día 32 fuera de rango"},
		{"999/01/01", dates.FormatYMD, "año menor a 1000"},
		{"10000/01/01", dates.FormatYMD, "año mayor a 9999"},
		{"2023/01", dates.FormatYMD, "solo dos partes"},
		{"2023/01/05/09", dates.FormatYMD, "cuatro partes"},
		{"2023/ab/05", dates.FormatYMD, "parte no numérica"},
		{"2023-02-29", dates.FormatYMD, "2023 no es bisiesto"},
	}
	for _, c := range casos {
		iso, ok := dates.Parse(c.texto, c.format)
		assert.False(t, ok, "Parse(%q) debe rechazar: %s", c.texto, c.motivo)
		assert.Equal(t, "", iso)
	}
}

func TestParse_PosicionesSegunFormato(t *testing.T) {
	// El mismo texto significa fechas distintas según el formato activo.
	iso, ok := dates.Parse("05/01/2024", dates.FormatDMY)
	require.True(t, ok)
	assert.Equal(t, "2024-01-05", iso, "en dd/mm/yyyy la primera parte es el día")

	_, ok = dates.Parse("05/01/2024", dates.FormatYMD)
	assert.False(t, ok, "en yyyy/mm/dd el año 05 queda fuera de rango")
}

func TestNew_ConstructorValidado(t *testing.T) {
	d, err := dates.New(2024, 2, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.ISO())

	_, err = dates.New(2023, 2, 29)
	assert.Error(t, err, "29 de febrero de un año no bisiesto debe rechazarse")

	_, err = dates.New(2023, 6, 31)
	assert.Error(t, err, "junio tiene 30 días")
}
