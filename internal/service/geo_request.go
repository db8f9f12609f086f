package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/citysafe/emergency_location_system/internal/config"
	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/citysafe/emergency_location_system/internal/notify"
	"github.com/citysafe/emergency_location_system/internal/realtime"
	"github.com/citysafe/emergency_location_system/internal/sms"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GeoRequestRepository определяет контракт для работы с таблицей geo_requests
type GeoRequestRepository interface {
	Create(ctx context.Context, request *models.GeoRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GeoRequest, error)
	MarkLocated(ctx context.Context, id uuid.UUID, lat, lng, accuracy float64) (*models.GeoRequest, error)
	ListRecent(ctx context.Context, limit int) ([]*models.GeoRequest, error)
	GetStats(ctx context.Context, minutes int) (*models.GeoRequestStats, error)
}

// GeoRequestService определяет контракт бизнес-логики рукопожатия геолокации
type GeoRequestService interface {
	CreateAndDispatch(ctx context.Context, phoneNumber string) (*models.GeoRequest, *models.DispatchLink, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.GeoRequest, error)
	ReportLocation(ctx context.Context, id uuid.UUID, lat, lng, accuracy float64) (*models.GeoRequest, error)
	ListHistory(ctx context.Context, limit int) ([]*models.GeoRequest, error)
	GetStats(ctx context.Context) (*models.GeoRequestStats, error)
}

type geoRequestService struct {
	repo      GeoRequestRepository
	logger    *logrus.Logger
	cfg       *config.Config
	realtime  realtime.Publisher
	notifier  notify.Publisher
}

func NewGeoRequestService(repo GeoRequestRepository, logger *logrus.Logger, cfg *config.Config, rt realtime.Publisher, notifier notify.Publisher) GeoRequestService {
	return &geoRequestService{
		repo:     repo,
		logger:   logger,
		cfg:      cfg,
		realtime: rt,
		notifier: notifier,
	}
}

// CreateAndDispatch создает pending-запрос и готовит ссылку для SMS пострадавшему.
// При ошибке вставки SMS не составляется, повторов нет.
func (s *geoRequestService) CreateAndDispatch(ctx context.Context, phoneNumber string) (*models.GeoRequest, *models.DispatchLink, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geo_request",
		"method":  "CreateAndDispatch",
	})
	log.Info("Creating a new location request")

	request := &models.GeoRequest{
		PhoneNumber: phoneNumber,
		Status:      models.GeoRequestStatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create location request in repository")
		return nil, nil, fmt.Errorf("service: could not create location request: %w", err)
	}

	victimURL := fmt.Sprintf("%s/loc/%s", s.cfg.PublicBaseURL, request.ID.String())
	body := sms.VictimLinkBody(victimURL)
	link := &models.DispatchLink{
		VictimURL:     victimURL,
		SMSBody:       body,
		SMSComposeURI: sms.ComposeURI(phoneNumber, body),
	}

	log.WithField("request_id", request.ID).Info("Location request created")
	return request, link, nil
}

// GetRequest возвращает запрос по ID
func (s *geoRequestService) GetRequest(ctx context.Context, id uuid.UUID) (*models.GeoRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not get location request: %w", err)
	}
	return request, nil
}

// ReportLocation выполняет единственный допустимый переход pending -> located.
// Повторная или запоздавшая запись отклоняется (first-write-wins), координаты
// уже located-запроса не перезаписываются.
func (s *geoRequestService) ReportLocation(ctx context.Context, id uuid.UUID, lat, lng, accuracy float64) (*models.GeoRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "geo_request",
		"method":     "ReportLocation",
		"request_id": id,
	})
	log.Info("Victim coordinates received")

	request, err := s.repo.MarkLocated(ctx, id, lat, lng, accuracy)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) || errors.Is(err, ErrAlreadyLocated) {
			log.WithError(err).Warn("Coordinate write rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to mark request located in repository")
		return nil, fmt.Errorf("service: could not mark request located: %w", err)
	}

	// Событие для подписанных консолей диспетчера
	event := realtime.Event{
		RequestID: request.ID,
		Status:    request.Status,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Accuracy:  request.Accuracy,
	}
	if err := s.realtime.PublishLocated(ctx, event); err != nil {
		// Координаты уже в БД, консоль догонит состояние перечитыванием
		log.WithError(err).Error("Failed to publish realtime event")
	}

	// Уведомление в очередь для вебхука центра диспетчеризации
	dispatchEvent := notify.DispatchEvent{
		RequestID:   request.ID,
		PhoneNumber: request.PhoneNumber,
		Latitude:    lat,
		Longitude:   lng,
		Accuracy:    accuracy,
	}
	if request.LocatedAt != nil {
		dispatchEvent.LocatedAt = *request.LocatedAt
	}
	if err := s.notifier.Publish(ctx, dispatchEvent); err != nil {
		log.WithError(err).Error("Failed to enqueue dispatch notification")
	}

	log.Info("Request located")
	return request, nil
}

// ListHistory возвращает последние запросы для консоли диспетчера
func (s *geoRequestService) ListHistory(ctx context.Context, limit int) ([]*models.GeoRequest, error) {
	if limit < 1 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "geo_request",
		"method":  "ListHistory",
		"limit":   limit,
	})

	requests, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list location requests from repository")
		return nil, fmt.Errorf("service: could not list location requests: %w", err)
	}

	return requests, nil
}

// GetStats возвращает статистику запросов за настроенное временное окно
func (s *geoRequestService) GetStats(ctx context.Context) (*models.GeoRequestStats, error) {
	stats, err := s.repo.GetStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return nil, fmt.Errorf("service: could not get request stats: %w", err)
	}
	return stats, nil
}
