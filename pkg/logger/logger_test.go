package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_ParsesLevel(t *testing.T) {
	log := New("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New("verbose")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestWithComponent_AddsField(t *testing.T) {
	log := New("info")
	buf := &bytes.Buffer{}
	log.SetOutput(buf)

	WithComponent(log, "notify").Info("delivering")

	assert.Contains(t, buf.String(), `"component":"notify"`)
}
