package dates

import (
	"fmt"
	"strconv"
	"strings"
)

// Format formato de fecha visible para el usuario. Es una preferencia
// global del proceso (Settings.DateFormat); no hay overrides por campo.
type Format string

const (
	FormatYMD Format = "yyyy/mm/dd"
	FormatDMY Format = "dd/mm/yyyy"
)

// Valid indica si el valor es uno de los formatos soportados.
func (f Format) Valid() bool {
	return f == FormatYMD || f == FormatDMY
}

// FormatISO convierte una fecha canónica ISO a su representación visible
// según el formato. Entrada vacía o que no parsea como ISO se devuelve
// sin cambios (nunca falla): el caller puede estar mostrando texto a
// medio escribir.
func FormatISO(iso string, f Format) string {
	if iso == "" || !strings.Contains(iso, "-") {
		return iso
	}
	d, err := FromISO(iso)
	if err != nil {
		return iso
	}
	if f == FormatDMY {
		return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
	}
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Parse interpreta texto del usuario según el formato y devuelve la forma
// canónica ISO.
//
// El separador se autodetecta del texto ("/" o "-", el que esté presente),
// no lo fija el formato: así "2024-01-05" y "2024/01/05" parsean igual.
// Reglas de rechazo (ok == false, no comitear): distinto de 3 partes,
// alguna parte no numérica, mes fuera de 1-12, día fuera de 1-31, año
// fuera de 1000-9999, o fecha de calendario imposible.
//
// Texto vacío (tras recortar espacios) devuelve ("", true): es el
// centinela válido de "limpiar el campo", distinto de un rechazo.
//
// Ley de ida y vuelta: Parse(FormatISO(d, f), f) == d para toda fecha
// ISO válida d y ambos formatos.
func Parse(text string, f Format) (iso string, ok bool) {
	if strings.TrimSpace(text) == "" {
		return "", true
	}

	sep := "-"
	if strings.Contains(text, "/") {
		sep = "/"
	}
	parts := strings.Split(text, sep)
	if len(parts) != 3 {
		return "", false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", false
		}
		nums[i] = n
	}

	var year, month, day int
	if f == FormatDMY {
		day, month, year = nums[0], nums[1], nums[2]
	} else {
		year, month, day = nums[0], nums[1], nums[2]
	}

	d, err := New(year, month, day)
	if err != nil {
		return "", false
	}
	return d.ISO(), true
}
