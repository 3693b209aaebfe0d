package invoicing

import (
	"sync"

	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

// ── Recalculo de fecha de vencimiento ─────────────────────────────────────────

// DueDateRecalc recalcula DueDate cuando cambian sus disparadores:
// InvoiceDate o Settings.DeadlineDays.
//
// Política de precedencia: una edición manual de DueDate gana hasta el
// siguiente cambio de disparador. Por eso el subscriber solo reacciona a
// cambios reales de InvoiceDate/DeadlineDays y nunca al cambio de DueDate
// en sí; de lo contrario pisaría la edición manual en cada transición.
type DueDateRecalc struct{}

func (DueDateRecalc) Name() string { return "due-date-recalc" }

func (DueDateRecalc) AfterTransition(old, next entity.State) []Action {
	sameTriggers := old.CurrentInvoice.InvoiceDate == next.CurrentInvoice.InvoiceDate &&
		old.Settings.DeadlineDays == next.Settings.DeadlineDays
	if sameTriggers {
		return nil
	}
	computed := dates.DueDate(next.CurrentInvoice.InvoiceDate, next.Settings.DeadlineDays)
	if computed == next.CurrentInvoice.DueDate {
		return nil
	}
	return []Action{UpdateInvoiceField{Field: FieldDueDate, Value: computed}}
}

// ── Resolución de tema ────────────────────────────────────────────────────────

// PreferenceSource puerto hacia la preferencia clara/oscura de la
// plataforma. Subscribe debe notificar cada cambio de preferencia para
// que la resolución sea viva, no una foto al arrancar.
type PreferenceSource interface {
	Current() string // entity.ThemeLight o entity.ThemeDark
	Subscribe(fn func())
}

// ThemeResolver mantiene el tema efectivo: el valor del setting, o la
// preferencia de la plataforma cuando el setting es "system". Se
// re-resuelve en dos momentos: como subscriber del store (cambio del
// setting) y ante notificaciones del PreferenceSource (cambio de la
// preferencia del sistema).
type ThemeResolver struct {
	mu       sync.Mutex
	source   PreferenceSource
	setting  string
	resolved string
	log      *logger.Logger
}

// NewThemeResolver crea el resolver y queda suscrito a la fuente.
func NewThemeResolver(source PreferenceSource, initialSetting string, log *logger.Logger) *ThemeResolver {
	r := &ThemeResolver{
		source:  source,
		setting: initialSetting,
		log:     log.WithComponent("theme"),
	}
	r.resolve()
	source.Subscribe(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.resolve()
	})
	return r
}

func (r *ThemeResolver) Name() string { return "theme-resolver" }

// AfterTransition re-resuelve cuando cambia Settings.Theme. Nunca devuelve
// acciones de seguimiento: el tema efectivo vive fuera del estado.
func (r *ThemeResolver) AfterTransition(old, next entity.State) []Action {
	if old.Settings.Theme == next.Settings.Theme {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setting = next.Settings.Theme
	r.resolve()
	return nil
}

// Resolved el tema efectivo actual: siempre "light" o "dark".
func (r *ThemeResolver) Resolved() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolved
}

// resolve requiere r.mu tomado.
func (r *ThemeResolver) resolve() {
	before := r.resolved
	if r.setting == entity.ThemeSystem {
		r.resolved = r.source.Current()
	} else {
		r.resolved = r.setting
	}
	if r.resolved != before {
		r.log.Debug().Str("setting", r.setting).Str("resolved", r.resolved).Msg("tema re-resuelto")
	}
}
