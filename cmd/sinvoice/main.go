// sinvoice — CLI de emisión de facturas sin servidor: lee la descripción
// de la factura desde un archivo JSON, toma la configuración del emisor
// de las mismas fuentes que el servidor (env / .env) y escribe el PDF.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sinvoice-api/pkg/config"
	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "sinvoice",
	Short:   "Sinvoice - facturas simples desde la terminal",
	Version: version,
	Long: `Sinvoice emite facturas en PDF a partir de una descripción en JSON:
cliente, fechas y líneas (descripción, fecha, horas, tarifa). La identidad
de la empresa, la numeración y el formato de fecha salen de la
configuración (variables de entorno o archivo .env), igual que en el
servidor HTTP.`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	rootCmd.AddCommand(newGenerateCmd(cfg, log))

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}
