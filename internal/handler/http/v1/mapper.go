package v1

import "github.com/citysafe/emergency_location_system/internal/models"

// ModelToGeoRequestResponse преобразует доменную модель запроса в DTO для ответа
func ModelToGeoRequestResponse(model *models.GeoRequest) GeoRequestResponse {
	return GeoRequestResponse{
		ID:          model.ID,
		PhoneNumber: model.PhoneNumber,
		Status:      model.Status,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Accuracy:    model.Accuracy,
		CreatedAt:   model.CreatedAt,
		LocatedAt:   model.LocatedAt,
	}
}

// ModelsToGeoRequestResponses преобразует слайс моделей в слайс DTO
func ModelsToGeoRequestResponses(models []*models.GeoRequest) []GeoRequestResponse {
	responses := make([]GeoRequestResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToGeoRequestResponse(model)
	}
	return responses
}

// ModelToPublicGeoRequestResponse преобразует модель в публичное DTO без номера телефона
func ModelToPublicGeoRequestResponse(model *models.GeoRequest) PublicGeoRequestResponse {
	return PublicGeoRequestResponse{
		ID:        model.ID,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
	}
}

// DTOToPropertyModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToPropertyModel(dto any) *models.Property {
	switch v := dto.(type) {
	case CreatePropertyRequest:
		return &models.Property{
			OwnerName:        v.OwnerName,
			OwnerPhone:       v.OwnerPhone,
			Address:          v.Address,
			ConstructionType: v.ConstructionType,
			Floors:           v.Floors,
			HasGasSupply:     v.HasGasSupply,
			FloorPlanURL:     v.FloorPlanURL,
		}
	case UpdatePropertyRequest:
		return &models.Property{
			OwnerName:        v.OwnerName,
			OwnerPhone:       v.OwnerPhone,
			Address:          v.Address,
			ConstructionType: v.ConstructionType,
			Floors:           v.Floors,
			HasGasSupply:     v.HasGasSupply,
			FloorPlanURL:     v.FloorPlanURL,
			Status:           v.Status,
		}
	}
	return nil
}

// ModelToPropertyResponse преобразует доменную модель в DTO для ответа
func ModelToPropertyResponse(model *models.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:               model.ID,
		OwnerName:        model.OwnerName,
		OwnerPhone:       model.OwnerPhone,
		Address:          model.Address,
		ConstructionType: model.ConstructionType,
		Floors:           model.Floors,
		HasGasSupply:     model.HasGasSupply,
		FloorPlanURL:     model.FloorPlanURL,
		Status:           model.Status,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// ModelsToPropertyResponses преобразует слайс моделей в слайс DTO
func ModelsToPropertyResponses(models []*models.Property) []*PropertyResponse {
	responses := make([]*PropertyResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToPropertyResponse(model)
	}
	return responses
}

// ModelsToHydrantResponses преобразует слайс моделей гидрантов в слайс DTO
func ModelsToHydrantResponses(models []*models.Hydrant) []*HydrantResponse {
	responses := make([]*HydrantResponse, len(models))
	for i, model := range models {
		responses[i] = &HydrantResponse{
			ID:        model.ID,
			Name:      model.Name,
			Latitude:  model.Latitude,
			Longitude: model.Longitude,
			Status:    model.Status,
			CreatedAt: model.CreatedAt,
		}
	}
	return responses
}
