package invoicing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// reducer aplica transiciones puras (estado viejo + acción -> estado nuevo).
// La única lectura ambiental es el reloj, inyectado como today para poder
// fijarlo en tests; fuera de ResetInvoice y AddInvoiceItem el reducer no
// consulta nada externo.
type reducer struct {
	today func() string // fecha de hoy en ISO
}

// apply ejecuta la transición. El switch es exhaustivo sobre el tipo suma;
// el default solo puede alcanzarse si se agrega una variante nueva sin su
// caso, y el panic lo hace visible en el primer test que la despache.
func (r reducer) apply(state entity.State, action Action) entity.State {
	next := state.Clone()

	switch a := action.(type) {
	case SetCustomers:
		next.Customers = make([]entity.Customer, len(a.Customers))
		copy(next.Customers, a.Customers)

	case AddCustomer:
		next.Customers = append(next.Customers, a.Customer)

	case SetSettings:
		next.Settings = mergeSettings(next.Settings, a.Patch)

	case UpdateInvoiceField:
		switch a.Field {
		case FieldCustomer:
			next.CurrentInvoice.Customer = a.Value
		case FieldInvoiceDate:
			next.CurrentInvoice.InvoiceDate = a.Value
		case FieldDueDate:
			next.CurrentInvoice.DueDate = a.Value
		}

	case UpdateInvoiceItem:
		item := &next.CurrentInvoice.Items[a.Index]
		switch a.Field {
		case ItemDescription:
			item.Description = a.Value
		case ItemDate:
			item.Date = a.Value
		case ItemHours:
			item.Hours = coerceDecimal(a.Value)
		case ItemRate:
			item.Rate = coerceDecimal(a.Value)
		}

	case AddInvoiceItem:
		next.CurrentInvoice.Items = append(next.CurrentInvoice.Items, entity.LineItem{
			Date:  r.today(),
			Hours: decimalOne,
			Rate:  next.Settings.DefaultHourlyRate,
		})

	case RemoveInvoiceItem:
		items := next.CurrentInvoice.Items
		next.CurrentInvoice.Items = append(items[:a.Index], items[a.Index+1:]...)

	case IncrementInvoiceNumber:
		next.Settings.InvoiceNumber++

	case ResetInvoice:
		today := r.today()
		next.CurrentInvoice = entity.CurrentInvoice{
			InvoiceDate: today,
			DueDate:     dates.DueDate(today, next.Settings.DeadlineDays),
			Items: []entity.LineItem{{
				Date:  today,
				Hours: decimalOne,
				Rate:  next.Settings.DefaultHourlyRate,
			}},
		}

	default:
		panic("invoicing: acción desconocida fuera del tipo suma")
	}

	return next
}

// mergeSettings fusión superficial: solo los campos con puntero no-nil
// reemplazan al valor actual.
func mergeSettings(s entity.Settings, p SettingsPatch) entity.Settings {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.CompanyAddress != nil {
		s.CompanyAddress = *p.CompanyAddress
	}
	if p.CompanyIcon != nil {
		s.CompanyIcon = *p.CompanyIcon
	}
	if p.DeadlineDays != nil {
		s.DeadlineDays = *p.DeadlineDays
	}
	if p.DefaultHourlyRate != nil {
		s.DefaultHourlyRate = *p.DefaultHourlyRate
	}
	if p.BankName != nil {
		s.BankName = *p.BankName
	}
	if p.BankAccountNumber != nil {
		s.BankAccountNumber = *p.BankAccountNumber
	}
	if p.FooterText != nil {
		s.FooterText = *p.FooterText
	}
	if p.InvoicePrefix != nil {
		s.InvoicePrefix = *p.InvoicePrefix
	}
	if p.InvoiceNumber != nil {
		s.InvoiceNumber = *p.InvoiceNumber
	}
	if p.OutputPDFPath != nil {
		s.OutputPDFPath = *p.OutputPDFPath
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.DateFormat != nil {
		s.DateFormat = *p.DateFormat
	}
	return s
}

// coerceDecimal texto numérico de horas/tarifa. Texto malformado o negativo
// se coerciona a 0 (clamp silencioso, no es un error reportable).
func coerceDecimal(text string) decimal.Decimal {
	d, err := decimal.NewFromString(text)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
