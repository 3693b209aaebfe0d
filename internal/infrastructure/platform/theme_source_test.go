package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
	"github.com/jhoicas/sinvoice-api/internal/infrastructure/platform"
)

func TestThemeSource_ColapsaALight(t *testing.T) {
	assert.Equal(t, entity.ThemeLight, platform.NewThemeSource("").Current())
	assert.Equal(t, entity.ThemeLight, platform.NewThemeSource("sepia").Current())
	assert.Equal(t, entity.ThemeDark, platform.NewThemeSource(entity.ThemeDark).Current())
}

func TestThemeSource_NotificaSoloCambiosReales(t *testing.T) {
	s := platform.NewThemeSource(entity.ThemeLight)
	avisos := 0
	s.Subscribe(func() { avisos++ })

	s.Set(entity.ThemeLight)
	assert.Equal(t, 0, avisos, "poner el mismo valor no notifica")

	s.Set(entity.ThemeDark)
	assert.Equal(t, 1, avisos)
	assert.Equal(t, entity.ThemeDark, s.Current())

	s.Set("cualquier-cosa")
	assert.Equal(t, 2, avisos, "un valor desconocido colapsa a light y eso es un cambio")
	assert.Equal(t, entity.ThemeLight, s.Current())
}
