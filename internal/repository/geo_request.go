package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/citysafe/emergency_location_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GeoRequestRepository struct {
	db *pgxpool.Pool
}

func NewGeoRequestRepository(db *pgxpool.Pool) service.GeoRequestRepository {
	return &GeoRequestRepository{db: db}
}

// Create создает новый запрос геолокации в статусе pending с пустыми координатами
func (r *GeoRequestRepository) Create(ctx context.Context, request *models.GeoRequest) error {
	query := `
		INSERT INTO geo_requests (phone_number, status)
		VALUES ($1, 'pending') RETURNING id, status, created_at;
	`
	err := r.db.QueryRow(ctx, query, request.PhoneNumber).
		Scan(&request.ID, &request.Status, &request.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create geo request: %w", err)
	}
	return nil
}

// GetByID возвращает запрос по его UUID
func (r *GeoRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GeoRequest, error) {
	request := &models.GeoRequest{}
	query := `
		SELECT id, phone_number, status, lat, lng, accuracy, created_at, located_at
		FROM geo_requests
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.PhoneNumber,
		&request.Status,
		&request.Latitude,
		&request.Longitude,
		&request.Accuracy,
		&request.CreatedAt,
		&request.LocatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get geo request by id: %w", err)
	}
	return request, nil
}

// MarkLocated выполняет переход pending -> located. Условие status = 'pending'
// в WHERE гарантирует, что переход случится не более одного раза: повторная
// запись (перезагрузка страницы маяка, поздний результат проигравшей гонку
// записи) не затрет уже полученные координаты.
func (r *GeoRequestRepository) MarkLocated(ctx context.Context, id uuid.UUID, lat, lng, accuracy float64) (*models.GeoRequest, error) {
	request := &models.GeoRequest{}
	query := `
		UPDATE geo_requests SET
			status = 'located',
			lat = $2,
			lng = $3,
			accuracy = $4,
			located_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id, phone_number, status, lat, lng, accuracy, created_at, located_at;
	`
	err := r.db.QueryRow(ctx, query, id, lat, lng, accuracy).Scan(
		&request.ID,
		&request.PhoneNumber,
		&request.Status,
		&request.Latitude,
		&request.Longitude,
		&request.Accuracy,
		&request.CreatedAt,
		&request.LocatedAt,
	)
	if err == nil {
		return request, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to mark geo request located: %w", err)
	}

	// Ноль строк: либо запроса нет, либо он уже located
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, service.ErrAlreadyLocated
}

// ListRecent возвращает последние запросы по убыванию времени создания
func (r *GeoRequestRepository) ListRecent(ctx context.Context, limit int) ([]*models.GeoRequest, error) {
	query := `
		SELECT id, phone_number, status, lat, lng, accuracy, created_at, located_at
		FROM geo_requests
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list geo requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.GeoRequest, 0)
	for rows.Next() {
		request := &models.GeoRequest{}
		err := rows.Scan(
			&request.ID,
			&request.PhoneNumber,
			&request.Status,
			&request.Latitude,
			&request.Longitude,
			&request.Accuracy,
			&request.CreatedAt,
			&request.LocatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geo request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return requests, nil
}

// GetStats возвращает количество запросов по статусам за временное окно
func (r *GeoRequestRepository) GetStats(ctx context.Context, minutes int) (*models.GeoRequestStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'located')
		FROM geo_requests
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	stats := &models.GeoRequestStats{}
	err := r.db.QueryRow(ctx, query, minutes).Scan(&stats.Total, &stats.Pending, &stats.Located)
	if err != nil {
		return nil, fmt.Errorf("failed to get geo request stats: %w", err)
	}
	return stats, nil
}
