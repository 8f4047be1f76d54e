package scanner

import (
	"sync"
	"time"
)

// Parámetros de clasificación de entrada. Un lector de códigos emite teclas
// con separación menor a burstGap; una persona tipea más lento.
const (
	DefaultMinLength = 8

	burstGap    = 30 * time.Millisecond
	burstQuiet  = 50 * time.Millisecond
	manualQuiet = 500 * time.Millisecond
)

// Decoder clasifica una secuencia de caracteres con timestamp como ráfaga de
// escáner o tipeo manual, y decide cuándo un código está completo: longitud
// mínima alcanzada y ventana de silencio vencida (50ms tras ráfaga, 500ms
// tras tipeo). Es una máquina de estados pura: el tiempo entra por parámetro.
type Decoder struct {
	minLen int
	buf    []rune
	last   time.Time
	burst  bool
}

// NewDecoder crea un decoder con la longitud mínima de código indicada
// (0 usa DefaultMinLength).
func NewDecoder(minLen int) *Decoder {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	return &Decoder{minLen: minLen}
}

// Input registra un carácter recibido en el instante at y devuelve la ventana
// de silencio que debe vencer antes de dar el código por completo.
func (d *Decoder) Input(r rune, at time.Time) time.Duration {
	d.burst = !d.last.IsZero() && at.Sub(d.last) < burstGap
	d.last = at
	d.buf = append(d.buf, r)
	return d.QuietWindow()
}

// QuietWindow devuelve la ventana vigente según el último gap observado.
func (d *Decoder) QuietWindow() time.Duration {
	if d.burst {
		return burstQuiet
	}
	return manualQuiet
}

// Deadline devuelve el instante en que vence la ventana de silencio.
func (d *Decoder) Deadline() time.Time {
	return d.last.Add(d.QuietWindow())
}

// IsBurst indica si la última entrada llegó a velocidad de escáner.
func (d *Decoder) IsBurst() bool {
	return d.burst
}

// Len devuelve la cantidad de caracteres acumulados.
func (d *Decoder) Len() int {
	return len(d.buf)
}

// TryComplete entrega el código si en el instante at la ventana de silencio
// ya venció y el largo alcanza el mínimo; en ese caso resetea el buffer.
func (d *Decoder) TryComplete(at time.Time) (string, bool) {
	if len(d.buf) < d.minLen || d.last.IsZero() || at.Before(d.Deadline()) {
		return "", false
	}
	code := string(d.buf)
	d.Reset()
	return code, true
}

// Reset descarta lo acumulado.
func (d *Decoder) Reset() {
	d.buf = nil
	d.last = time.Time{}
	d.burst = false
}

// Event es un carácter con su instante de llegada.
type Event struct {
	Char rune
	At   time.Time
}

// Run procesa una secuencia completa de eventos y devuelve el código (si la
// secuencia termina en un código válido), junto con la clasificación de la
// entrada. Es la variante sin timers: se evalúa al vencer la última ventana.
func Run(events []Event, minLen int) (code string, ok bool, burst bool) {
	d := NewDecoder(minLen)
	for _, ev := range events {
		d.Input(ev.Char, ev.At)
	}
	burst = d.IsBurst()
	code, ok = d.TryComplete(d.Deadline())
	return code, ok, burst
}

// Listener envuelve un Decoder con un timer real: cada carácter reprograma el
// disparo y onComplete recibe el código cuando la ventana vence.
type Listener struct {
	mu         sync.Mutex
	d          *Decoder
	timer      *time.Timer
	now        func() time.Time
	onComplete func(code string)
}

// NewListener crea un listener; onComplete se invoca desde una goroutine del timer.
func NewListener(minLen int, onComplete func(code string)) *Listener {
	return &Listener{
		d:          NewDecoder(minLen),
		now:        time.Now,
		onComplete: onComplete,
	}
}

// Feed ingresa un carácter y reprograma el timer de completitud.
func (l *Listener) Feed(r rune) {
	l.mu.Lock()
	defer l.mu.Unlock()

	window := l.d.Input(r, l.now())
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(window, l.fire)
}

func (l *Listener) fire() {
	l.mu.Lock()
	code, ok := l.d.TryComplete(l.now())
	l.mu.Unlock()
	if ok && l.onComplete != nil {
		l.onComplete(code)
	}
}

// Stop cancela el timer pendiente.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
