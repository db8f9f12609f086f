package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PropertyRepository определяет контракт для работы с таблицей properties
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Archive(ctx context.Context, id uuid.UUID) error
	ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error)

	GetPropertyFromCache(ctx context.Context, id uuid.UUID) (*models.Property, error)
	SetPropertyCache(ctx context.Context, property *models.Property) error
	InvalidatePropertyCache(ctx context.Context, id uuid.UUID) error
}

// PropertyService определяет контракт бизнес-логики реестра объектов
type PropertyService interface {
	CreateProperty(ctx context.Context, property *models.Property) error
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
	UpdateProperty(ctx context.Context, property *models.Property) error
	ArchiveProperty(ctx context.Context, id uuid.UUID) error
	ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error)
}

type propertyService struct {
	repo   PropertyRepository
	logger *logrus.Logger
}

func NewPropertyService(repo PropertyRepository, logger *logrus.Logger) PropertyService {
	return &propertyService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProperty регистрирует объект недвижимости
func (s *propertyService) CreateProperty(ctx context.Context, property *models.Property) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "property",
		"method":  "CreateProperty",
		"address": property.Address,
	})
	log.Info("Attempting to register a new property")

	property.Status = "active"
	if err := s.repo.Create(ctx, property); err != nil {
		log.WithError(err).Error("Failed to create property in repository")
		return fmt.Errorf("service: could not create property: %w", err)
	}

	log.WithField("property_id", property.ID).Info("Property registered successfully")
	return nil
}

// GetProperty получает объект по ID, сначала из кеша
func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "property",
		"method":      "GetProperty",
		"property_id": id,
	})

	cached, err := s.repo.GetPropertyFromCache(ctx, id)
	if err != nil {
		// Ошибка кеша не фатальна, идем в БД
		log.WithError(err).Warn("Failed to read property cache")
	}
	if cached != nil {
		return cached, nil
	}

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to get property from repository")
		return nil, fmt.Errorf("service: could not get property: %w", err)
	}

	if err := s.repo.SetPropertyCache(ctx, property); err != nil {
		log.WithError(err).Warn("Failed to write property cache")
	}

	return property, nil
}

// UpdateProperty обновляет существующий объект
func (s *propertyService) UpdateProperty(ctx context.Context, property *models.Property) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "property",
		"method":      "UpdateProperty",
		"property_id": property.ID,
	})
	log.Info("Attempting to update property")

	existing, err := s.repo.GetByID(ctx, property.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent property")
		return fmt.Errorf("service: property with id %s not found for update: %w", property.ID, err)
	}

	existing.OwnerName = property.OwnerName
	existing.OwnerPhone = property.OwnerPhone
	existing.Address = property.Address
	existing.ConstructionType = property.ConstructionType
	existing.Floors = property.Floors
	existing.HasGasSupply = property.HasGasSupply
	existing.FloorPlanURL = property.FloorPlanURL
	existing.Status = property.Status

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update property in repository")
		return fmt.Errorf("service: could not update property: %w", err)
	}

	if err := s.repo.InvalidatePropertyCache(ctx, property.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate property cache")
	}

	log.Info("Property updated successfully")
	return nil
}

// ArchiveProperty переводит объект в статус archived
func (s *propertyService) ArchiveProperty(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "property",
		"method":      "ArchiveProperty",
		"property_id": id,
	})
	log.Info("Attempting to archive property")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to archive a non-existent property")
		return fmt.Errorf("service: property with id %s not found for archive: %w", id, err)
	}

	if err := s.repo.Archive(ctx, id); err != nil {
		log.WithError(err).Error("Failed to archive property in repository")
		return fmt.Errorf("service: could not archive property: %w", err)
	}

	if err := s.repo.InvalidatePropertyCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate property cache")
	}

	log.Info("Property archived successfully")
	return nil
}

// ListProperties возвращает список объектов с пагинацией
func (s *propertyService) ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	properties, err := s.repo.ListProperties(ctx, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list properties from repository")
		return nil, fmt.Errorf("service: could not list properties: %w", err)
	}

	return properties, nil
}
