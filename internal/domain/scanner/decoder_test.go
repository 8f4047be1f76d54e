package scanner_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosco-api/internal/domain/scanner"
)

var t0 = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

// stream arma los eventos de un código con separación fija entre teclas.
func stream(code string, gap time.Duration) []scanner.Event {
	events := make([]scanner.Event, 0, len(code))
	at := t0
	for _, r := range code {
		events = append(events, scanner.Event{Char: r, At: at})
		at = at.Add(gap)
	}
	return events
}

// Ráfaga de escáner: gaps de 10ms, el código se completa con ventana de 50ms.
func TestRun_RafagaDeEscaner(t *testing.T) {
	code, ok, burst := scanner.Run(stream("77912345", 10*time.Millisecond), 0)

	require.True(t, ok)
	assert.Equal(t, "77912345", code)
	assert.True(t, burst, "gaps <30ms deben clasificarse como escáner")
}

// Tipeo manual: gaps de 120ms, se completa igual pero con ventana de 500ms.
func TestRun_TipeoManual(t *testing.T) {
	code, ok, burst := scanner.Run(stream("77912345", 120*time.Millisecond), 0)

	require.True(t, ok)
	assert.Equal(t, "77912345", code)
	assert.False(t, burst)
}

// Menos de 8 caracteres: nunca hay código completo.
func TestRun_CodigoCorto(t *testing.T) {
	_, ok, _ := scanner.Run(stream("1234567", 10*time.Millisecond), 0)
	assert.False(t, ok)
}

// La ventana de silencio depende del último gap: 50ms tras ráfaga, 500ms tras tipeo.
func TestDecoder_VentanaSegunVelocidad(t *testing.T) {
	d := scanner.NewDecoder(0)

	// Primer carácter: sin gap previo, cuenta como manual.
	w := d.Input('1', t0)
	assert.Equal(t, 500*time.Millisecond, w)

	// Segundo carácter 10ms después: ráfaga.
	w = d.Input('2', t0.Add(10*time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, w)
	assert.True(t, d.IsBurst())

	// Tercer carácter 200ms después: vuelve a manual.
	w = d.Input('3', t0.Add(210*time.Millisecond))
	assert.Equal(t, 500*time.Millisecond, w)
	assert.False(t, d.IsBurst())
}

// TryComplete exige que la ventana haya vencido.
func TestDecoder_NoCompletaAntesDeLaVentana(t *testing.T) {
	d := scanner.NewDecoder(0)
	var at time.Time
	for i, r := range "77912345" {
		at = t0.Add(time.Duration(i) * 10 * time.Millisecond)
		d.Input(r, at)
	}

	_, ok := d.TryComplete(at.Add(20 * time.Millisecond))
	assert.False(t, ok, "a 20ms del último carácter la ventana de 50ms sigue abierta")

	code, ok := d.TryComplete(at.Add(50 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, "77912345", code)

	// Tras completar, el buffer queda vacío.
	assert.Equal(t, 0, d.Len())
}

// Listener con timer real: la ráfaga dispara onComplete poco después del último carácter.
func TestListener_DisparaTrasLaRafaga(t *testing.T) {
	var got atomic.Value
	l := scanner.NewListener(0, func(code string) { got.Store(code) })
	defer l.Stop()

	for _, r := range "77912345" {
		l.Feed(r)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		v, _ := got.Load().(string)
		return v == "77912345"
	}, time.Second, 10*time.Millisecond)
}
