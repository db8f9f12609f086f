package service

import (
	"context"
	"fmt"

	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Радиус поиска гидрантов по умолчанию и предельный, в метрах
const (
	defaultHydrantRadius = 500
	maxHydrantRadius     = 5000
)

// HydrantRepository определяет контракт для работы с таблицей hydrants
type HydrantRepository interface {
	ListHydrants(ctx context.Context, page, pageSize int) ([]*models.Hydrant, error)
	FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]*models.Hydrant, error)
}

// HydrantService определяет контракт поиска гидрантов для карты
type HydrantService interface {
	ListHydrants(ctx context.Context, page, pageSize int) ([]*models.Hydrant, error)
	FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]*models.Hydrant, error)
}

type hydrantService struct {
	repo   HydrantRepository
	logger *logrus.Logger
}

func NewHydrantService(repo HydrantRepository, logger *logrus.Logger) HydrantService {
	return &hydrantService{
		repo:   repo,
		logger: logger,
	}
}

// ListHydrants возвращает список гидрантов с пагинацией
func (s *hydrantService) ListHydrants(ctx context.Context, page, pageSize int) ([]*models.Hydrant, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	hydrants, err := s.repo.ListHydrants(ctx, page, pageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list hydrants from repository")
		return nil, fmt.Errorf("service: could not list hydrants: %w", err)
	}
	return hydrants, nil
}

// FindNearby находит гидранты в радиусе от точки
func (s *hydrantService) FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]*models.Hydrant, error) {
	if radiusMeters <= 0 {
		radiusMeters = defaultHydrantRadius
	}
	if radiusMeters > maxHydrantRadius {
		radiusMeters = maxHydrantRadius
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "hydrant",
		"method":  "FindNearby",
		"radius":  radiusMeters,
	})

	hydrants, err := s.repo.FindNearby(ctx, lat, lng, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find hydrants by location")
		return nil, fmt.Errorf("service: could not find nearby hydrants: %w", err)
	}

	log.WithField("count", len(hydrants)).Info("Hydrant lookup completed")
	return hydrants, nil
}
