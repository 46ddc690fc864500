package logger

import (
	"sync"
	"time"
)

// Throttle limita la frecuencia con la que se emite una misma clase de log.
// Dentro de la ventana los eventos se cuentan en lugar de escribirse; el siguiente
// evento permitido informa cuántos se suprimieron.
type Throttle struct {
	mu           sync.Mutex
	window       time.Duration
	lastLoggedAt time.Time
	suppressed   int
	now          func() time.Time
}

// NewThrottle crea un limitador con la ventana indicada. window <= 0 deja pasar todo.
func NewThrottle(window time.Duration) *Throttle {
	return &Throttle{window: window, now: time.Now}
}

// WithClock reemplaza el reloj; pensado para tests.
func (t *Throttle) WithClock(now func() time.Time) *Throttle {
	t.now = now
	return t
}

// Allow indica si el evento actual debe escribirse. Cuando devuelve true, suppressed es
// el número de eventos descartados desde el último permitido.
func (t *Throttle) Allow() (ok bool, suppressed int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if t.window > 0 && !t.lastLoggedAt.IsZero() && now.Sub(t.lastLoggedAt) < t.window {
		t.suppressed++
		return false, 0
	}
	suppressed = t.suppressed
	t.suppressed = 0
	t.lastLoggedAt = now
	return true, suppressed
}

// LastLoggedAt momento del último evento permitido (cero si nunca se emitió).
func (t *Throttle) LastLoggedAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastLoggedAt
}
