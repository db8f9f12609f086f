package beacon

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider возвращает заранее заданную позицию или ошибку
type fakeProvider struct {
	pos *Position
	err error
}

func (p *fakeProvider) CurrentPosition(ctx context.Context) (*Position, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.pos, nil
}

// fakeSink имитирует сетевую запись с настраиваемой задержкой и результатом
type fakeSink struct {
	delay time.Duration
	err   error
	calls atomic.Int32
	last  Report
}

func (s *fakeSink) Report(ctx context.Context, report Report) error {
	s.calls.Add(1)
	s.last = report
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.err
}

func newTestBeacon(provider PositionProvider, sink CoordinateSink, cfg Config) *Beacon {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return New(provider, sink, cfg, logger)
}

func TestRun_WriteConfirmed(t *testing.T) {
	// Подготовка
	requestID := uuid.New()
	provider := &fakeProvider{pos: &Position{Latitude: -4.22, Longitude: 15.29, Accuracy: 12}}
	sink := &fakeSink{}
	b := newTestBeacon(provider, sink, Config{
		RequestID:       requestID,
		EmergencyNumber: "118",
		WriteTimeout:    time.Second,
	})

	// Действие
	outcome := b.Run(context.Background())

	// Проверки: запись успела, фолбэк не собирается
	assert.Equal(t, StateSuccess, outcome.State)
	require.NotNil(t, outcome.Position)
	assert.Equal(t, -4.22, outcome.Position.Latitude)
	assert.Empty(t, outcome.SMSBody)
	assert.Empty(t, outcome.SMSURI)

	assert.Equal(t, int32(1), sink.calls.Load())
	assert.Equal(t, requestID, sink.last.RequestID)
	assert.Equal(t, 15.29, sink.last.Longitude)
}

func TestRun_SlowWriteFallsBackToSMS(t *testing.T) {
	// Подготовка: запись дольше бюджета
	requestID := uuid.New()
	provider := &fakeProvider{pos: &Position{Latitude: 55.75, Longitude: 37.61, Accuracy: 8}}
	sink := &fakeSink{delay: 300 * time.Millisecond}
	b := newTestBeacon(provider, sink, Config{
		RequestID:       requestID,
		EmergencyNumber: "118",
		WriteTimeout:    50 * time.Millisecond,
	})

	// Действие
	start := time.Now()
	outcome := b.Run(context.Background())

	// Проверки: таймер выигрывает гонку, не дожидаясь завершения записи
	assert.Less(t, time.Since(start), 300*time.Millisecond)
	assert.Equal(t, StateSMSFallback, outcome.State)
	assert.Contains(t, outcome.SMSBody, "SOS 55.75,37.61")
	assert.Contains(t, outcome.SMSBody, "ID:"+requestID.String())
	assert.Contains(t, outcome.SMSURI, "sms:118?body=")
}

func TestRun_WriteErrorFallsBackToSMS(t *testing.T) {
	// Подготовка
	requestID := uuid.New()
	provider := &fakeProvider{pos: &Position{Latitude: 1, Longitude: 2, Accuracy: 3}}
	sink := &fakeSink{err: errors.New("connection refused")}
	b := newTestBeacon(provider, sink, Config{
		RequestID:       requestID,
		EmergencyNumber: "101",
		WriteTimeout:    time.Second,
	})

	// Действие
	outcome := b.Run(context.Background())

	// Проверки
	assert.Equal(t, StateSMSFallback, outcome.State)
	assert.Contains(t, outcome.SMSBody, "SOS 1,2")
	assert.Contains(t, outcome.SMSURI, "sms:101?body=")
}

func TestRun_OfflineSkipsNetworkWrite(t *testing.T) {
	// Подготовка: устройство офлайн на момент определения позиции
	provider := &fakeProvider{pos: &Position{Latitude: 1, Longitude: 2, Accuracy: 3, Offline: true}}
	sink := &fakeSink{}
	b := newTestBeacon(provider, sink, Config{
		RequestID:       uuid.New(),
		EmergencyNumber: "118",
	})

	// Действие
	outcome := b.Run(context.Background())

	// Проверки: сетевая запись не начинается вовсе
	assert.Equal(t, StateSMSFallback, outcome.State)
	assert.Equal(t, int32(0), sink.calls.Load())
	assert.NotEmpty(t, outcome.SMSBody)
}

func TestRun_PermissionDenied(t *testing.T) {
	// Подготовка: пользователь запретил доступ к геолокации
	provider := &fakeProvider{err: &FixError{Code: FixPermissionDenied}}
	sink := &fakeSink{}
	b := newTestBeacon(provider, sink, Config{RequestID: uuid.New()})

	// Действие
	outcome := b.Run(context.Background())

	// Проверки: ошибка терминальна, фолбэк без координат невозможен
	assert.Equal(t, StateError, outcome.State)
	assert.Contains(t, outcome.Message, "location access denied")
	assert.Empty(t, outcome.SMSBody)
	assert.Equal(t, int32(0), sink.calls.Load())
}

func TestRun_FixContextTimeout(t *testing.T) {
	// Подготовка: провайдер вернул истекший контекст определения позиции
	provider := &fakeProvider{err: context.DeadlineExceeded}
	sink := &fakeSink{}
	b := newTestBeacon(provider, sink, Config{RequestID: uuid.New()})

	// Действие
	outcome := b.Run(context.Background())

	// Проверки
	assert.Equal(t, StateError, outcome.State)
	assert.Contains(t, outcome.Message, "timed out")
}

func TestNew_DefaultTimeouts(t *testing.T) {
	b := newTestBeacon(&fakeProvider{}, &fakeSink{}, Config{RequestID: uuid.New()})

	assert.Equal(t, 15*time.Second, b.cfg.WriteTimeout)
	assert.Equal(t, 30*time.Second, b.cfg.FixTimeout)
}
