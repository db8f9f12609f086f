package beacon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// HTTPSink пишет координаты в публичный эндпоинт сервера POST /loc/:id
type HTTPSink struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPSink(baseURL string, client *http.Client) *HTTPSink {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSink{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

type reportPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Report выполняет запись координат. Любой не-2xx статус считается ошибкой
// записи: для маяка это сигнал уйти в SMS-фолбэк.
func (s *HTTPSink) Report(ctx context.Context, report Report) error {
	payload, err := json.Marshal(reportPayload{
		Latitude:  report.Latitude,
		Longitude: report.Longitude,
		Accuracy:  report.Accuracy,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal coordinate report: %w", err)
	}

	url := fmt.Sprintf("%s/loc/%s", s.baseURL, report.RequestID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create coordinate report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send coordinate report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("coordinate report rejected with status %d", resp.StatusCode)
	}
	return nil
}
