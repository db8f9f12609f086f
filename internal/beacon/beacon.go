// Package beacon реализует рукопожатие геолокации на стороне пострадавшего:
// получение координат устройства и доставку их диспетчеру с ограниченной
// по времени деградацией в SMS-фолбэк.
package beacon

import (
	"context"
	"errors"
	"time"

	"github.com/citysafe/emergency_location_system/internal/sms"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State - состояние конечного автомата маяка
type State string

const (
	StateIdle        State = "idle"
	StateLocating    State = "locating"
	StateSuccess     State = "success"
	StateSMSFallback State = "sms-fallback"
	StateError       State = "error"
)

// Position - однократное определение позиции устройства
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // радиус в метрах
	Offline   bool    // устройство без сети передачи данных на момент определения
}

// Коды ошибок определения позиции, по аналогии с кодами device geolocation API
type FixErrorCode int

const (
	FixPermissionDenied FixErrorCode = iota + 1
	FixPositionUnavailable
	FixTimeout
)

// FixError - ошибка получения позиции от устройства.
// В отличие от ошибок записи, она терминальна: фолбэк невозможен без координат.
type FixError struct {
	Code FixErrorCode
}

func (e *FixError) Error() string {
	return e.Message()
}

// Message возвращает сообщение для пользователя по коду ошибки устройства
func (e *FixError) Message() string {
	switch e.Code {
	case FixPermissionDenied:
		return "location access denied, allow location access and retry"
	case FixPositionUnavailable:
		return "device could not determine position"
	case FixTimeout:
		return "position acquisition timed out"
	default:
		return "unknown geolocation error"
	}
}

// PositionProvider - источник однократного определения позиции устройства
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (*Position, error)
}

// Report - координаты, передаваемые обратно диспетчеру
type Report struct {
	RequestID uuid.UUID
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// CoordinateSink - канал записи координат (основной путь, по сети)
type CoordinateSink interface {
	Report(ctx context.Context, report Report) error
}

// Config - параметры одного прогона маяка
type Config struct {
	RequestID       uuid.UUID
	EmergencyNumber string
	// Бюджет на запись координат по сети; по истечении уходим в SMS-фолбэк
	WriteTimeout time.Duration
	// Таймаут определения позиции на уровне устройства
	FixTimeout time.Duration
}

// Outcome - терминальный результат одной попытки. Автоматических повторов нет.
type Outcome struct {
	State    State
	Position *Position
	// Заполнены только в состоянии sms-fallback
	SMSBody string
	SMSURI  string
	// Заполнено только в состоянии error
	Message string
}

// Beacon выполняет конечный автомат рукопожатия
type Beacon struct {
	provider PositionProvider
	sink     CoordinateSink
	cfg      Config
	logger   *logrus.Logger
}

func New(provider PositionProvider, sink CoordinateSink, cfg Config, logger *logrus.Logger) *Beacon {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 15 * time.Second
	}
	if cfg.FixTimeout <= 0 {
		cfg.FixTimeout = 30 * time.Second
	}
	return &Beacon{
		provider: provider,
		sink:     sink,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run выполняет одну попытку: получает позицию, затем гонка записи по сети
// против таймера. Запись, проигравшая гонку, не отменяется; ее поздний
// результат игнорируется (сервер сам отбрасывает повторную запись).
func (b *Beacon) Run(ctx context.Context) Outcome {
	log := b.logger.WithFields(logrus.Fields{
		"component":  "beacon",
		"request_id": b.cfg.RequestID,
	})
	log.Info("Acquiring device position")

	fixCtx, cancelFix := context.WithTimeout(ctx, b.cfg.FixTimeout)
	defer cancelFix()

	pos, err := b.provider.CurrentPosition(fixCtx)
	if err != nil {
		return b.fixFailed(log, err)
	}

	// Устройство офлайн: сетевую запись не начинаем вовсе
	if pos.Offline {
		log.Warn("Device reports offline, skipping network write")
		return b.fallback(pos)
	}

	log.WithFields(logrus.Fields{
		"lat":      pos.Latitude,
		"lng":      pos.Longitude,
		"accuracy": pos.Accuracy,
	}).Info("Position acquired, writing coordinates")

	report := Report{
		RequestID: b.cfg.RequestID,
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Accuracy:  pos.Accuracy,
	}

	writeErr := make(chan error, 1)
	go func() {
		// WithoutCancel: проигравшая запись доживает сама по себе
		writeErr <- b.sink.Report(context.WithoutCancel(ctx), report)
	}()

	timer := time.NewTimer(b.cfg.WriteTimeout)
	defer timer.Stop()

	select {
	case err := <-writeErr:
		if err != nil {
			log.WithError(err).Warn("Coordinate write failed, falling back to SMS")
			return b.fallback(pos)
		}
		log.Info("Coordinate write confirmed")
		return Outcome{State: StateSuccess, Position: pos}
	case <-timer.C:
		log.Warn("Coordinate write timed out, falling back to SMS")
		return b.fallback(pos)
	}
}

func (b *Beacon) fixFailed(log *logrus.Entry, err error) Outcome {
	log.WithError(err).Error("Failed to acquire device position")

	var message string
	var fixErr *FixError
	switch {
	case errors.As(err, &fixErr):
		message = fixErr.Message()
	case errors.Is(err, context.DeadlineExceeded):
		message = (&FixError{Code: FixTimeout}).Message()
	default:
		message = (&FixError{}).Message()
	}

	return Outcome{State: StateError, Message: message}
}

func (b *Beacon) fallback(pos *Position) Outcome {
	body := sms.SOSBody(pos.Latitude, pos.Longitude, pos.Accuracy, b.cfg.RequestID)
	return Outcome{
		State:    StateSMSFallback,
		Position: pos,
		SMSBody:  body,
		SMSURI:   sms.ComposeURI(b.cfg.EmergencyNumber, body),
	}
}
