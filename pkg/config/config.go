package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Company CompanyConfig
	Invoice InvoiceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env           string // development, staging, production
	Name          string
	Theme         string // light, dark, system
	SystemTheme   string // preferencia de la plataforma cuando Theme == "system"
	SeedCustomers bool   // carga clientes de ejemplo al arrancar
}

// CompanyConfig identidad de la empresa emisora.
type CompanyConfig struct {
	Name     string
	Address  string
	IconPath string // PNG opcional para el encabezado del PDF; vacío = solo nombre
}

// InvoiceConfig valores iniciales de facturación (ajustables luego vía /api/settings).
type InvoiceConfig struct {
	DeadlineDays      int
	DefaultHourlyRate float64
	BankName          string
	BankAccountNumber string
	FooterText        string
	Prefix            string
	Number            int64 // próximo consecutivo a asignar
	OutputPath        string
	Currency          string
	DateFormat        string // yyyy/mm/dd o dd/mm/yyyy
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, COMPANY_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:           getString(v, "APP_ENV", "development"),
			Name:          getString(v, "APP_NAME", "sinvoice"),
			Theme:         getString(v, "APP_THEME", "system"),
			SystemTheme:   getString(v, "APP_SYSTEM_THEME", "light"),
			SeedCustomers: getBool(v, "APP_SEED_CUSTOMERS", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Company: CompanyConfig{
			Name:     getString(v, "COMPANY_NAME", "My Awesome Company"),
			Address:  getString(v, "COMPANY_ADDRESS", ""),
			IconPath: getString(v, "COMPANY_ICON_PATH", ""),
		},
		Invoice: InvoiceConfig{
			DeadlineDays:      getInt(v, "INVOICE_DEADLINE_DAYS", 10),
			DefaultHourlyRate: getFloat(v, "INVOICE_DEFAULT_RATE", 50),
			BankName:          getString(v, "BANK_NAME", ""),
			BankAccountNumber: getString(v, "BANK_ACCOUNT_NUMBER", ""),
			FooterText:        getString(v, "INVOICE_FOOTER_TEXT", "Thank you for your business!"),
			Prefix:            getString(v, "INVOICE_PREFIX", "INV"),
			Number:            int64(getInt(v, "INVOICE_NUMBER", 1)),
			OutputPath:        getString(v, "INVOICE_OUTPUT_PATH", "."),
			Currency:          getString(v, "INVOICE_CURRENCY", "CHF"),
			DateFormat:        getString(v, "INVOICE_DATE_FORMAT", "yyyy/mm/dd"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, _ := strconv.ParseFloat(v.GetString(key), 64)
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
