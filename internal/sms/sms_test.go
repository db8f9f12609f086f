package sms

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citysafe/emergency_location_system/internal/dispatch"
)

func TestComposeURI_EncodesSpacesAsPercent20(t *testing.T) {
	uri := ComposeURI("118", "SOS 1,2")

	// Пробелы должны кодироваться как %20, а не '+'
	assert.Equal(t, "sms:118?body=SOS%201%2C2", uri)
	assert.NotContains(t, uri, "+")
}

func TestVictimLinkBody(t *testing.T) {
	body := VictimLinkBody("http://localhost:8080/loc/abc")

	assert.Equal(t, "EMERGENCY: open this link to share your location: http://localhost:8080/loc/abc", body)
}

func TestSOSBody_Format(t *testing.T) {
	requestID := uuid.MustParse("0b54ce6e-0f11-4c8c-9b1a-2f4a94be4cb1")

	body := SOSBody(-4.22, 15.29, 12, requestID)

	assert.Equal(t, "SOS -4.22,15.29 (±12m) ID:0b54ce6e-0f11-4c8c-9b1a-2f4a94be4cb1", body)
}

func TestSOSBody_RoundTripsThroughDecoder(t *testing.T) {
	// Подготовка: текст фолбэка должен разбираться декодером диспетчера
	body := SOSBody(55.7558, 37.6173, 8.5, uuid.New())

	// Действие
	lat, lng, err := dispatch.DecodeCoordinates(body)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 55.7558, lat)
	assert.Equal(t, 37.6173, lng)
}
