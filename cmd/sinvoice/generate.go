package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	infrapdf "github.com/jhoicas/sinvoice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sinvoice-api/pkg/config"
	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

// invoiceFile descripción de la factura en el JSON de entrada.
type invoiceFile struct {
	Customer struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"customer"`
	InvoiceDate string `json:"invoice_date"`       // ISO; vacío = hoy
	DueDate     string `json:"due_date,omitempty"` // ISO; vacío = derivada del plazo
	Items       []struct {
		Description string          `json:"description"`
		Date        string          `json:"date"` // ISO; vacío = hoy
		Hours       decimal.Decimal `json:"hours"`
		Rate        decimal.Decimal `json:"rate"` // cero = tarifa por defecto
	} `json:"items"`
}

func newGenerateCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate [invoice.json]",
		Short: "Genera el PDF de una factura descrita en JSON",
		Example: `  # Emitir con salida en el directorio configurado
  sinvoice generate factura.json

  # Elegir el archivo de salida
  sinvoice generate factura.json -o /tmp/factura.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, cfg, log, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "ruta del PDF de salida (default: directorio configurado)")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, log *logger.Logger, inputPath, output string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("leer %s: %w", inputPath, err)
	}
	var in invoiceFile
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("parsear %s: %w", inputPath, err)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%s: la factura necesita al menos una línea", inputPath)
	}

	// El CLI recorre la misma ruta que el servidor: store + subscribers +
	// caso de uso de emisión. Las transiciones son las mismas que
	// dispararía el formulario.
	st := invoicing.InitialState(cfg, log)
	st.Customers = nil // el cliente viene del JSON, no de los seeds
	store := invoicing.NewStore(st, nil)
	store.Subscribe(invoicing.DueDateRecalc{})

	customerUC := invoicing.NewCustomerUseCase(store)
	invoiceUC := invoicing.NewInvoiceUseCase(store)

	if _, err := customerUC.Create(in.Customer.Name, in.Customer.Address); err != nil {
		return fmt.Errorf("cliente: %w", err)
	}
	if in.InvoiceDate != "" {
		if err := invoiceUC.SetField(invoicing.FieldInvoiceDate, in.InvoiceDate); err != nil {
			return err
		}
	}
	// La fecha de vencimiento manual se fija después de la de factura:
	// gana sobre el recalculo hasta el próximo cambio de disparador.
	if in.DueDate != "" {
		if err := invoiceUC.SetField(invoicing.FieldDueDate, in.DueDate); err != nil {
			return err
		}
	}

	for i, item := range in.Items {
		if i > 0 {
			invoiceUC.AddItem()
		}
		if err := invoiceUC.UpdateItem(i, invoicing.ItemDescription, item.Description); err != nil {
			return err
		}
		if item.Date != "" {
			if err := invoiceUC.UpdateItem(i, invoicing.ItemDate, item.Date); err != nil {
				return err
			}
		}
		if err := invoiceUC.UpdateItem(i, invoicing.ItemHours, item.Hours.String()); err != nil {
			return err
		}
		if !item.Rate.IsZero() {
			if err := invoiceUC.UpdateItem(i, invoicing.ItemRate, item.Rate.String()); err != nil {
				return err
			}
		}
	}

	emitUC := invoicing.NewEmitInvoiceUseCase(store, infrapdf.NewMarotoInvoiceGenerator(), log)
	pdf, filename, err := emitUC.Emit(cmd.Context())
	if err != nil {
		return err
	}

	outPath := output
	if outPath == "" {
		outPath = filepath.Join(cfg.Invoice.OutputPath, filename)
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", outPath, err)
	}

	log.Info().
		Str("output", outPath).
		Int("size_bytes", len(pdf)).
		Msg("factura generada")
	fmt.Fprintln(cmd.OutOrStdout(), outPath)
	return nil
}
