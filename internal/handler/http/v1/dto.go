package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateGeoRequestRequest DTO для создания запроса геолокации
// @Description DTO для создания запроса геолокации
type CreateGeoRequestRequest struct {
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
}

// GeoRequestResponse DTO для ответа с состоянием запроса геолокации
// @Description DTO для ответа с состоянием запроса геолокации
type GeoRequestResponse struct {
	ID          uuid.UUID  `json:"id"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Status      string     `json:"status"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Accuracy    *float64   `json:"accuracy"`
	CreatedAt   time.Time  `json:"created_at"`
	LocatedAt   *time.Time `json:"located_at,omitempty"`
}

// CreateGeoRequestResponse DTO для ответа на создание: строка плюс материалы для SMS
// @Description DTO для ответа на создание запроса геолокации
type CreateGeoRequestResponse struct {
	Request       GeoRequestResponse `json:"request"`
	VictimURL     string             `json:"victim_url"`
	SMSBody       string             `json:"sms_body"`
	SMSComposeURI string             `json:"sms_compose_uri"`
}

// PublicGeoRequestResponse DTO для публичной страницы маяка: без номера телефона
// @Description Публичное состояние запроса геолокации
type PublicGeoRequestResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportLocationRequest DTO для записи координат пострадавшего
// @Description DTO для записи координат пострадавшего
type ReportLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  *float64 `json:"accuracy" validate:"omitempty,gte=0"`
}

// DecodeTextRequest DTO для ручного разбора координат из текста SMS
// @Description DTO для ручного разбора координат из текста SMS
type DecodeTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// DecodeTextResponse DTO с извлеченной парой координат
// @Description DTO с извлеченной парой координат
type DecodeTextResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapActionResponse - один шаг плана открытия карт
// @Description Один шаг плана открытия карт
type MapActionResponse struct {
	URI     string `json:"uri"`
	DelayMS int64  `json:"delay_ms"`
}

// MapLinksResponse DTO с навигационными ссылками для located-запроса
// @Description DTO с навигационными ссылками для located-запроса
type MapLinksResponse struct {
	WebURL     string              `json:"web_url"`
	GeoURI     string              `json:"geo_uri"`
	LaunchBoth []MapActionResponse `json:"launch_both"`
}

// GeoRequestStatsResponse DTO для ответа со статистикой запросов
// @Description DTO для ответа со статистикой запросов
type GeoRequestStatsResponse struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Located int `json:"located"`
}

// CreatePropertyRequest DTO для регистрации объекта недвижимости
// @Description DTO для регистрации объекта недвижимости
type CreatePropertyRequest struct {
	OwnerName        string `json:"owner_name" validate:"required,min=2,max=255"`
	OwnerPhone       string `json:"owner_phone,omitempty" validate:"omitempty,max=32"`
	Address          string `json:"address" validate:"required,min=2,max=512"`
	ConstructionType string `json:"construction_type,omitempty"`
	Floors           int    `json:"floors" validate:"required,gt=0"`
	HasGasSupply     bool   `json:"has_gas_supply"`
	FloorPlanURL     string `json:"floor_plan_url,omitempty" validate:"omitempty,url"`
}

// UpdatePropertyRequest DTO для обновления объекта недвижимости
// @Description DTO для обновления объекта недвижимости
type UpdatePropertyRequest struct {
	OwnerName        string `json:"owner_name" validate:"required,min=2,max=255"`
	OwnerPhone       string `json:"owner_phone,omitempty" validate:"omitempty,max=32"`
	Address          string `json:"address" validate:"required,min=2,max=512"`
	ConstructionType string `json:"construction_type,omitempty"`
	Floors           int    `json:"floors" validate:"required,gt=0"`
	HasGasSupply     bool   `json:"has_gas_supply"`
	FloorPlanURL     string `json:"floor_plan_url,omitempty" validate:"omitempty,url"`
	Status           string `json:"status" validate:"required,oneof=active archived"`
}

// PropertyResponse DTO для ответа с информацией об объекте
// @Description DTO для ответа с информацией об объекте
type PropertyResponse struct {
	ID               uuid.UUID `json:"id"`
	OwnerName        string    `json:"owner_name"`
	OwnerPhone       string    `json:"owner_phone,omitempty"`
	Address          string    `json:"address"`
	ConstructionType string    `json:"construction_type,omitempty"`
	Floors           int       `json:"floors"`
	HasGasSupply     bool      `json:"has_gas_supply"`
	FloorPlanURL     string    `json:"floor_plan_url,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HydrantResponse DTO для ответа с информацией о гидранте
// @Description DTO для ответа с информацией о гидранте
type HydrantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
