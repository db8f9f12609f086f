package models

import (
	"time"

	"github.com/google/uuid"
)

// Property представляет объект недвижимости, зарегистрированный жителем
// для пожарного учета
type Property struct {
	ID               uuid.UUID `json:"id"`
	OwnerName        string    `json:"owner_name"`
	OwnerPhone       string    `json:"owner_phone"`
	Address          string    `json:"address"`
	ConstructionType string    `json:"construction_type"`
	Floors           int       `json:"floors"`
	HasGasSupply     bool      `json:"has_gas_supply"`
	FloorPlanURL     string    `json:"floor_plan_url"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
