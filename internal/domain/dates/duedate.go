package dates

// DueDate deriva la fecha de vencimiento: fecha de factura + días de plazo.
// Aritmética de calendario en UTC, cruzando límites de mes y de año.
// Devuelve "" si la fecha de factura está vacía o no parsea como ISO.
func DueDate(invoiceISO string, deadlineDays int) string {
	d, err := FromISO(invoiceISO)
	if err != nil {
		return ""
	}
	return d.Time().AddDate(0, 0, deadlineDays).Format("2006-01-02")
}
