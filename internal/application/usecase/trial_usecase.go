package usecase

import (
	"time"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/domain"
	"github.com/jhoicas/kiosco-api/internal/domain/entity"
	"github.com/jhoicas/kiosco-api/internal/domain/repository"
	"github.com/jhoicas/kiosco-api/internal/events"
	"github.com/jhoicas/kiosco-api/pkg/logger"
)

// TrialUseCase período de prueba del usuario demo: el primer acceso fija el
// inicio y de ahí se derivan los días restantes. Para cualquier otro usuario
// el trial no aplica.
type TrialUseCase struct {
	trials   repository.TrialRepository
	users    repository.UserRepository
	settings *SettingsUseCase
	log      *logger.Logger
	days     int
	demoUser string
	now      func() time.Time
}

// NewTrialUseCase construye el caso de uso.
func NewTrialUseCase(
	trials repository.TrialRepository,
	users repository.UserRepository,
	settings *SettingsUseCase,
	log *logger.Logger,
	days int,
	demoUser string,
) *TrialUseCase {
	if days <= 0 {
		days = 7
	}
	return &TrialUseCase{
		trials:   trials,
		users:    users,
		settings: settings,
		log:      log,
		days:     days,
		demoUser: demoUser,
		now:      time.Now,
	}
}

// WithClock fija el reloj (tests).
func (uc *TrialUseCase) WithClock(now func() time.Time) *TrialUseCase {
	uc.now = now
	return uc
}

// Subscribe engancha el caso de uso al bus de sesión: en cada login del demo
// se asegura el registro de trial.
func (uc *TrialUseCase) Subscribe(bus *events.Bus) error {
	return bus.SubscribeLogin(func(ev events.SessionEvent) {
		if ev.Username != uc.demoUser {
			return
		}
		if _, err := uc.ensure(ev.UserID); err != nil {
			uc.log.Error().Err(err).Str("user_id", ev.UserID).Msg("asegurar registro de trial")
		}
	})
}

// Status devuelve el estado del trial para el banner. Para usuarios que no
// son demo el acceso es pleno y el banner no se muestra.
func (uc *TrialUseCase) Status(userID string) (*dto.TrialResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Username != uc.demoUser {
		return &dto.TrialResponse{Demo: false, Active: true}, nil
	}

	trial, err := uc.ensure(userID)
	if err != nil {
		return nil, err
	}
	daysLeft := uc.remainingDays(trial)

	// Marca de actividad para poder auditar el último uso del demo.
	if err := uc.settings.TouchLastActive(); err != nil {
		uc.log.Warn().Err(err).Msg("registrar última actividad")
	}

	return &dto.TrialResponse{
		Demo:     true,
		Active:   daysLeft > 0,
		DaysLeft: daysLeft,
	}, nil
}

// Recompute recalcula los días restantes del demo y los deja en el log.
// Lo dispara el scheduler una vez por hora.
func (uc *TrialUseCase) Recompute() {
	user, err := uc.users.FindByUsername(uc.demoUser)
	if err != nil {
		uc.log.Error().Err(err).Msg("recomputar trial: buscar usuario demo")
		return
	}
	if user == nil {
		return // sin usuario demo no hay trial que vigilar
	}
	trial, err := uc.trials.Get(user.ID)
	if err != nil {
		uc.log.Error().Err(err).Msg("recomputar trial: leer registro")
		return
	}
	if trial == nil {
		return // el trial arranca con el primer acceso, no antes
	}
	daysLeft := uc.remainingDays(trial)
	ev := uc.log.Info()
	if daysLeft == 0 {
		ev = uc.log.Warn()
	}
	ev.Str("user_id", user.ID).Int("days_left", daysLeft).Msg("estado del período de prueba")
}

// ensure devuelve el registro de trial, creándolo en el primer acceso.
// Una fecha guardada inválida (cero o futura) se repara con "ahora".
func (uc *TrialUseCase) ensure(userID string) (*entity.TrialPeriod, error) {
	trial, err := uc.trials.Get(userID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if trial == nil || trial.FirstAccess.IsZero() || trial.FirstAccess.After(now) {
		trial = &entity.TrialPeriod{UserID: userID, FirstAccess: now}
		if err := uc.trials.Put(trial); err != nil {
			return nil, err
		}
	}
	return trial, nil
}

func (uc *TrialUseCase) remainingDays(trial *entity.TrialPeriod) int {
	elapsed := int(uc.now().Sub(trial.FirstAccess).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}
	left := uc.days - elapsed
	if left < 0 {
		left = 0
	}
	return left
}
