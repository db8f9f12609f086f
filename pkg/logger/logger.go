package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер с уровнем из конфигурации
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

// WithComponent возвращает entry с полем component для фоновых подсистем
// (воркер уведомлений, realtime-подписки)
func WithComponent(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
