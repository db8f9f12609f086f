package models

import (
	"time"

	"github.com/google/uuid"
)

// Hydrant представляет пожарный гидрант на карте города
type Hydrant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
