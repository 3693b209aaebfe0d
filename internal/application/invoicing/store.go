package invoicing

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sinvoice-api/internal/domain/dates"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

var decimalOne = decimal.NewFromInt(1)

// Subscriber reacción nombrada a una transición comiteada. Los subscribers
// se invocan sincrónicamente después de aplicar cada acción, en el orden
// fijo en que fueron registrados, y siempre observan el estado ya
// comiteado (nunca un estado a mitad de transición).
//
// Un subscriber puede devolver acciones de seguimiento; se aplican dentro
// del mismo Dispatch, cada una con su propia ronda de notificaciones,
// hasta agotar la cola.
type Subscriber interface {
	Name() string
	AfterTransition(old, next entity.State) []Action
}

// Store contenedor único del estado del formulario. No hay estado a nivel
// de paquete: la instancia se crea en main y se inyecta a los casos de uso.
//
// Un solo productor lógico (la ruta de dispatch de la UI); el mutex
// serializa los handlers HTTP concurrentes para conservar esa disciplina.
type Store struct {
	mu    sync.Mutex
	state entity.State
	red   reducer
	subs  []Subscriber
}

// NewStore crea el store con el estado inicial dado. today permite fijar
// el reloj en tests; con nil se usa la fecha UTC real.
func NewStore(initial entity.State, today func() string) *Store {
	if today == nil {
		today = dates.Today
	}
	if len(initial.CurrentInvoice.Items) == 0 {
		// la factura siempre nace con una línea
		initial.CurrentInvoice.Items = []entity.LineItem{{
			Date:  today(),
			Hours: decimalOne,
			Rate:  initial.Settings.DefaultHourlyRate,
		}}
	}
	return &Store{
		state: initial,
		red:   reducer{today: today},
	}
}

// Subscribe registra un subscriber. El orden de registro es el orden de
// notificación. Debe completarse durante el armado, antes del primer
// Dispatch concurrente.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

// Dispatch aplica la acción y luego notifica a los subscribers en orden
// fijo. Las acciones de seguimiento que devuelvan se drenan dentro de la
// misma llamada, de modo que al retornar el estado ya es estable.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := []Action{action}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		old := s.state
		s.state = s.red.apply(old, a)

		for _, sub := range s.subs {
			queue = append(queue, sub.AfterTransition(old, s.state)...)
		}
	}
}

// Snapshot copia profunda del estado comiteado.
func (s *Store) Snapshot() entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
