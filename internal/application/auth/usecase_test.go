package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosco-api/internal/application/auth"
	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/events"
	"github.com/jhoicas/kiosco-api/internal/infrastructure/store"
)

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *events.Bus) {
	t.Helper()
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	bus := events.New()
	uc := auth.NewAuthUseCase(store.NewUserRepository(db), bus, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "kiosco-api-test",
	})
	return uc, bus
}

func TestAuth_Register_YLogin(t *testing.T) {
	uc, _ := newAuthUC(t)

	user, err := uc.Register(dto.RegisterRequest{Username: "  dueño  ", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "dueño", user.Username, "el username se guarda sin bordes")
	assert.Equal(t, "admin", user.Role, "rol por defecto")

	out, err := uc.Login(dto.LoginRequest{Username: "dueño", Password: "secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestAuth_Register_DuplicadoRechazado(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "dueño", Password: "secreta"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "dueño", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAuth_Register_Validaciones(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username vacío")

	_, err = uc.Register(dto.RegisterRequest{Username: "alguien", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password vacía")

	_, err = uc.Register(dto.RegisterRequest{Username: "alguien", Password: "x", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol fuera de la enumeración")
}

func TestAuth_Login_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "dueño", Password: "secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "dueño", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// El login publica la transición de sesión en el bus (suscripción síncrona).
func TestAuth_Login_PublicaEnElBus(t *testing.T) {
	uc, bus := newAuthUC(t)

	var got events.SessionEvent
	require.NoError(t, bus.SubscribeLogin(func(ev events.SessionEvent) { got = ev }))

	user, err := uc.Register(dto.RegisterRequest{Username: "demo", Password: "demo", Role: "demo"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "demo", Password: "demo"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "demo", got.Username)
	assert.Equal(t, "demo", got.Role)
}

func TestAuth_Logout_PublicaEnElBus(t *testing.T) {
	uc, bus := newAuthUC(t)

	var got events.SessionEvent
	require.NoError(t, bus.SubscribeLogout(func(ev events.SessionEvent) { got = ev }))

	uc.Logout("id-1", "dueño", "admin")
	assert.Equal(t, "id-1", got.UserID)
	assert.Equal(t, "dueño", got.Username)
}
