// Package platform implementa los puertos hacia la plataforma anfitriona.
package platform

import (
	"sync"

	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// ThemeSource implementa invoicing.PreferenceSource con una preferencia
// mantenida en memoria. El servidor no tiene media query que observar:
// el valor inicial llega de la configuración y puede cambiarse en caliente
// vía Set (endpoint de administración o señal), notificando a los
// suscriptores como lo haría un cambio de preferencia del sistema.
type ThemeSource struct {
	mu        sync.Mutex
	current   string
	listeners []func()
}

// NewThemeSource crea la fuente. Valores distintos de "dark" colapsan a "light".
func NewThemeSource(initial string) *ThemeSource {
	if initial != entity.ThemeDark {
		initial = entity.ThemeLight
	}
	return &ThemeSource{current: initial}
}

// Current la preferencia vigente: "light" o "dark".
func (s *ThemeSource) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registra un listener de cambios.
func (s *ThemeSource) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Set cambia la preferencia y notifica si hubo cambio real.
func (s *ThemeSource) Set(pref string) {
	if pref != entity.ThemeDark {
		pref = entity.ThemeLight
	}

	s.mu.Lock()
	changed := s.current != pref
	s.current = pref
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range listeners {
		fn()
	}
}
