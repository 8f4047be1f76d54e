package events

import "github.com/asaskevich/EventBus"

// Tópicos de sesión. Reemplazan al polling: los interesados se suscriben y
// reciben las transiciones reales de estado (login/logout).
const (
	TopicSessionLogin  = "session:login"
	TopicSessionLogout = "session:logout"
)

// SessionEvent describe una transición de sesión.
type SessionEvent struct {
	UserID   string
	Username string
	Role     string
}

// Bus es el bus de eventos in-process de la aplicación.
type Bus struct {
	bus EventBus.Bus
}

// New crea el bus.
func New() *Bus {
	return &Bus{bus: EventBus.New()}
}

// PublishLogin notifica un inicio de sesión.
func (b *Bus) PublishLogin(ev SessionEvent) {
	b.bus.Publish(TopicSessionLogin, ev)
}

// PublishLogout notifica un cierre de sesión.
func (b *Bus) PublishLogout(ev SessionEvent) {
	b.bus.Publish(TopicSessionLogout, ev)
}

// SubscribeLogin registra un handler para inicios de sesión.
func (b *Bus) SubscribeLogin(fn func(ev SessionEvent)) error {
	return b.bus.Subscribe(TopicSessionLogin, fn)
}

// SubscribeLogout registra un handler para cierres de sesión.
func (b *Bus) SubscribeLogout(fn func(ev SessionEvent)) error {
	return b.bus.Subscribe(TopicSessionLogout, fn)
}
