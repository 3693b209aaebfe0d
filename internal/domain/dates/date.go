// Package dates implementa el manejo de fechas del formulario de facturas:
// la representación canónica ISO (YYYY-MM-DD), el códec hacia/desde los dos
// formatos de pantalla soportados y la política de fecha de vencimiento.
//
// Todo el paquete trabaja con aritmética de calendario normalizada a UTC
// para evitar corrimientos por horario de verano.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date representación intermedia validada de una fecha de calendario.
// Solo se construye a través de New o FromISO; si existe, es una fecha real.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New construye una fecha validada. Rechaza componentes fuera de rango
// (mes 1-12, día 1-31, año 1000-9999) y fechas imposibles de calendario
// (ej. 30 de febrero): se reconstruye vía time.Date en UTC y se compara
// el día resultante contra el solicitado.
func New(year, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1000 || year > 9999 {
		return Date{}, fmt.Errorf("dates: componentes fuera de rango: %04d-%02d-%02d", year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, fmt.Errorf("dates: fecha de calendario inválida: %04d-%02d-%02d", year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// FromISO construye una fecha a partir de la forma canónica YYYY-MM-DD.
func FromISO(iso string) (Date, error) {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("dates: no es una fecha ISO: %q", iso)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, fmt.Errorf("dates: no es una fecha ISO: %q", iso)
	}
	return New(year, month, day)
}

// ISO devuelve la forma canónica YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time devuelve la medianoche UTC de la fecha.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Today la fecha de hoy en UTC, en forma canónica ISO.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}
