package invoicing

import (
	"encoding/base64"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
	"github.com/jhoicas/sinvoice-api/pkg/config"
	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

// InitialState traduce la configuración al estado inicial del store.
// En un sistema real los clientes y la configuración vendrían de un
// almacén externo; acá se inyectan al arrancar y viven en memoria
// durante el proceso.
func InitialState(cfg *config.Config, log *logger.Logger) entity.State {
	dateFormat := cfg.Invoice.DateFormat
	if !dates.Format(dateFormat).Valid() {
		log.Warn().Str("date_format", dateFormat).Msg("formato de fecha no soportado, usando yyyy/mm/dd")
		dateFormat = string(dates.FormatYMD)
	}

	icon := ""
	if cfg.Company.IconPath != "" {
		raw, err := os.ReadFile(cfg.Company.IconPath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Company.IconPath).Msg("no se pudo leer el ícono, el PDF usará solo el nombre")
		} else {
			icon = base64.StdEncoding.EncodeToString(raw)
		}
	}

	var customers []entity.Customer
	if cfg.App.SeedCustomers {
		customers = []entity.Customer{
			{ID: 1, Name: "John Doe", Address: "123 Main St, Anytown, USA"},
			{ID: 2, Name: "Jane Smith", Address: "456 Oak Ave, Sometown, USA"},
		}
	}

	today := dates.Today()
	return entity.State{
		Customers: customers,
		Settings: entity.Settings{
			CompanyName:       cfg.Company.Name,
			CompanyAddress:    cfg.Company.Address,
			CompanyIcon:       icon,
			DeadlineDays:      cfg.Invoice.DeadlineDays,
			DefaultHourlyRate: decimal.NewFromFloat(cfg.Invoice.DefaultHourlyRate),
			BankName:          cfg.Invoice.BankName,
			BankAccountNumber: cfg.Invoice.BankAccountNumber,
			FooterText:        cfg.Invoice.FooterText,
			InvoicePrefix:     cfg.Invoice.Prefix,
			InvoiceNumber:     cfg.Invoice.Number,
			OutputPDFPath:     cfg.Invoice.OutputPath,
			Currency:          cfg.Invoice.Currency,
			Theme:             cfg.App.Theme,
			DateFormat:        dateFormat,
		},
		CurrentInvoice: entity.CurrentInvoice{
			InvoiceDate: today,
			DueDate:     dates.DueDate(today, cfg.Invoice.DeadlineDays),
		},
	}
}
