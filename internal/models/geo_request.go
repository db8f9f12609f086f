package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы запроса геолокации. Переход pending -> located происходит не более
// одного раза, это гарантирует репозиторий.
const (
	GeoRequestStatusPending = "pending"
	GeoRequestStatusLocated = "located"
)

// GeoRequest представляет один запрос экстренной геолокации пострадавшего.
// Идентификатор встраивается в ссылку /loc/:id, которую диспетчер отправляет по SMS.
type GeoRequest struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Status      string    `json:"status"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Accuracy    *float64  `json:"accuracy"`
	CreatedAt   time.Time `json:"created_at"`
	LocatedAt   *time.Time `json:"located_at,omitempty"`
}

// DispatchLink - материалы для передачи ссылки пострадавшему
type DispatchLink struct {
	VictimURL     string
	SMSBody       string
	SMSComposeURI string
}

// GeoRequestStats - агрегированная статистика по запросам за временное окно
type GeoRequestStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Located int `json:"located"`
}
