package beacon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSink_Report_Success(t *testing.T) {
	// Подготовка
	requestID := uuid.New()
	var gotPath string
	var gotPayload reportPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := NewHTTPSink(server.URL+"/", nil) // Завершающий слэш должен обрезаться

	// Действие
	err := sink.Report(context.Background(), Report{
		RequestID: requestID,
		Latitude:  -4.22,
		Longitude: 15.29,
		Accuracy:  12,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "/loc/"+requestID.String(), gotPath)
	assert.Equal(t, -4.22, gotPayload.Latitude)
	assert.Equal(t, 15.29, gotPayload.Longitude)
	assert.Equal(t, 12.0, gotPayload.Accuracy)
}

func TestHTTPSink_Report_RejectedStatus(t *testing.T) {
	// Подготовка: сервер отбрасывает повторную запись с 409
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	sink := NewHTTPSink(server.URL, nil)

	// Действие
	err := sink.Report(context.Background(), Report{RequestID: uuid.New()})

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
}

func TestHTTPSink_Report_ConnectionError(t *testing.T) {
	// Подготовка: сервер уже закрыт
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	sink := NewHTTPSink(server.URL, nil)

	// Действие
	err := sink.Report(context.Background(), Report{RequestID: uuid.New()})

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send coordinate report")
}
