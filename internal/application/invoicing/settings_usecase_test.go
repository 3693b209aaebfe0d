package invoicing_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain"
)

func TestSettings_ValidacionDelPatch(t *testing.T) {
	uc := invoicing.NewSettingsUseCase(storeDePrueba())

	negativo := -1
	err := uc.Update(invoicing.SettingsPatch{DeadlineDays: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el plazo no puede ser negativo")

	cero := int64(0)
	err = uc.Update(invoicing.SettingsPatch{InvoiceNumber: &cero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el consecutivo arranca en 1")

	tema := "sepia"
	err = uc.Update(invoicing.SettingsPatch{Theme: &tema})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	formato := "mm-dd-yyyy"
	err = uc.Update(invoicing.SettingsPatch{DateFormat: &formato})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_MonedaSeNormaliza(t *testing.T) {
	s := storeDePrueba()
	uc := invoicing.NewSettingsUseCase(s)

	moneda := "eur"
	require.NoError(t, uc.Update(invoicing.SettingsPatch{Currency: &moneda}))
	assert.Equal(t, "EUR", uc.Get().Currency, "el código se guarda en mayúsculas canónicas")

	moneda = "XYZ"
	err := uc.Update(invoicing.SettingsPatch{Currency: &moneda})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "XYZ no es un código ISO-4217")
	assert.Equal(t, "EUR", uc.Get().Currency, "un patch rechazado no toca nada")
}

func TestSettings_UploadIcon(t *testing.T) {
	uc := invoicing.NewSettingsUseCase(storeDePrueba())

	err := uc.UploadIcon("esto no es base64 !!!")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.UploadIcon(base64.StdEncoding.EncodeToString([]byte("bytes cualesquiera")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "base64 válido pero no es una imagen")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	icono := base64.StdEncoding.EncodeToString(buf.Bytes())
	require.NoError(t, uc.UploadIcon(icono))
	assert.Equal(t, icono, uc.Get().CompanyIcon)
}
