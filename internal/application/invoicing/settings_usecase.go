package invoicing

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // registro de decodificadores para validar íconos
	_ "image/png"

	"golang.org/x/text/currency"

	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// SettingsUseCase validación y aplicación de cambios de configuración.
type SettingsUseCase struct {
	store *Store
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *Store) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Get la configuración vigente.
func (uc *SettingsUseCase) Get() entity.Settings {
	return uc.store.Snapshot().Settings
}

// Update valida el patch y lo aplica como fusión superficial. Un patch
// sin campos es un no-op legítimo (la configuración queda idéntica).
func (uc *SettingsUseCase) Update(patch SettingsPatch) error {
	if patch.DeadlineDays != nil && *patch.DeadlineDays < 0 {
		return fmt.Errorf("%w: deadline_days debe ser >= 0", domain.ErrInvalidInput)
	}
	if patch.DefaultHourlyRate != nil && patch.DefaultHourlyRate.IsNegative() {
		return fmt.Errorf("%w: default_hourly_rate debe ser >= 0", domain.ErrInvalidInput)
	}
	if patch.InvoiceNumber != nil && *patch.InvoiceNumber < 1 {
		return fmt.Errorf("%w: invoice_number debe ser >= 1", domain.ErrInvalidInput)
	}
	if patch.Currency != nil {
		unit, err := currency.ParseISO(*patch.Currency)
		if err != nil {
			return fmt.Errorf("%w: moneda %q no es un código ISO-4217", domain.ErrInvalidInput, *patch.Currency)
		}
		normalized := unit.String()
		patch.Currency = &normalized
	}
	if patch.DateFormat != nil && !dates.Format(*patch.DateFormat).Valid() {
		return fmt.Errorf("%w: formato de fecha %q no soportado", domain.ErrInvalidInput, *patch.DateFormat)
	}
	if patch.Theme != nil {
		switch *patch.Theme {
		case entity.ThemeLight, entity.ThemeDark, entity.ThemeSystem:
		default:
			return fmt.Errorf("%w: tema %q no soportado", domain.ErrInvalidInput, *patch.Theme)
		}
	}

	uc.store.Dispatch(SetSettings{Patch: patch})
	return nil
}

// UploadIcon guarda el ícono de la empresa. Se exige que el payload base64
// decodifique como imagen antes de aceptarlo; un ícono que no decodifica
// jamás llega al renderer.
func (uc *SettingsUseCase) UploadIcon(b64 string) error {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("%w: el ícono no es base64 válido", domain.ErrInvalidInput)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("%w: el ícono no decodifica como imagen", domain.ErrInvalidInput)
	}
	uc.store.Dispatch(SetSettings{Patch: SettingsPatch{CompanyIcon: &b64}})
	return nil
}
